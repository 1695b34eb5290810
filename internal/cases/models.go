package cases

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the MongoDB collection holding case documents.
const Collection = "case"

// Case statuses. The status field is an open string: these are the
// documented values but any string is accepted and stored as-is.
const (
	StatusOpen     = "open"
	StatusInReview = "in_review"
	StatusClosed   = "closed"
)

// Case is an investigation record keyed by the username under investigation.
// The ObjectID marshals to its hex form, so clients always see the public
// string id.
type Case struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username        string             `bson:"username" json:"username"`
	Allegations     *string            `bson:"allegations,omitempty" json:"allegations,omitempty"`
	ReporterName    *string            `bson:"reporter_name,omitempty" json:"reporter_name,omitempty"`
	ReporterContact *string            `bson:"reporter_contact,omitempty" json:"reporter_contact,omitempty"`
	Status          string             `bson:"status" json:"status"`
	RiskScore       *int               `bson:"risk_score,omitempty" json:"risk_score,omitempty"`
	Notes           *string            `bson:"notes,omitempty" json:"notes,omitempty"`
}

// CreateCaseRequest is the payload for opening a new case.
type CreateCaseRequest struct {
	Username        string  `json:"username" binding:"required"`
	Allegations     *string `json:"allegations"`
	ReporterName    *string `json:"reporter_name"`
	ReporterContact *string `json:"reporter_contact"`
}

// UpdateCaseRequest is the payload for a partial case update. Only the
// fields present in the request are written; nil means "leave untouched".
type UpdateCaseRequest struct {
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
	RiskScore *int    `json:"risk_score" binding:"omitempty,gte=0,lte=100"`
}

// Fields returns the update document containing only the supplied fields.
// An empty map means the request carried nothing to change.
func (r UpdateCaseRequest) Fields() bson.M {
	fields := bson.M{}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	if r.RiskScore != nil {
		fields["risk_score"] = *r.RiskScore
	}
	return fields
}

// ListFilter narrows a case listing to exact matches on the provided
// fields. Empty values are omitted from the query, not matched.
type ListFilter struct {
	Username string
	Status   string
	Limit    int64
}
