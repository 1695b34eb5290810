package apierr

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for the API error taxonomy. Handlers translate these
// into HTTP statuses; repositories and services return them wrapped.
var (
	// ErrNotFound means a referenced document does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID means an id string is not a valid ObjectID representation.
	// Kept distinct from ErrNotFound for diagnostics even though both map
	// to a 404 for clients.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrStoreUnavailable means the document store is not configured or
	// not reachable.
	ErrStoreUnavailable = errors.New("database not available")
)

// ValidationMessages flattens a binding error into a field -> message map
// suitable for a JSON error response. Non-validator errors (malformed JSON,
// wrong types) are reported under the "body" key.
func ValidationMessages(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[snakeCase(fe.Field())] = messageFor(fe)
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// snakeCase converts a struct field name like RiskScore or CaseID to its
// snake_case form so error keys match the JSON payload field names.
// Uppercase runs count as a single word.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
