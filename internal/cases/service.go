package cases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fraudwatch/case-manager/case-manager-backend/internal/apierr"
)

// DefaultListLimit caps case listings when the client does not ask for one.
const DefaultListLimit = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create opens a new case with status "open" and returns its public id.
func (s *Service) Create(ctx context.Context, req CreateCaseRequest) (string, error) {
	c := &Case{
		Username:        req.Username,
		Allegations:     req.Allegations,
		ReporterName:    req.ReporterName,
		ReporterContact: req.ReporterContact,
		Status:          StatusOpen,
	}
	id, err := s.repo.Insert(ctx, c)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Get fetches one case by its public id.
func (s *Service) Get(ctx context.Context, publicID string) (*Case, error) {
	oid, err := parseID(publicID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

// Exists confirms a case exists for the given public id. It returns
// apierr.ErrInvalidID for a malformed id and apierr.ErrNotFound for a
// well-formed id matching nothing.
func (s *Service) Exists(ctx context.Context, publicID string) error {
	_, err := s.Get(ctx, publicID)
	return err
}

// List returns cases matching the filter, capped at the filter's limit.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Case, error) {
	query := bson.M{}
	if f.Username != "" {
		query["username"] = f.Username
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.Find(ctx, query, limit)
}

// Update applies the supplied fields to an existing case. It reports
// whether anything was written: a request with no fields is a no-op and
// never reaches the store.
func (s *Service) Update(ctx context.Context, publicID string, req UpdateCaseRequest) (bool, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return false, nil
	}
	oid, err := parseID(publicID)
	if err != nil {
		return false, err
	}
	matched, err := s.repo.UpdateFields(ctx, oid, fields)
	if err != nil {
		return false, err
	}
	if matched == 0 {
		return false, apierr.ErrNotFound
	}
	return true, nil
}

func parseID(publicID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(publicID)
	if err != nil {
		return primitive.NilObjectID, apierr.ErrInvalidID
	}
	return oid, nil
}
