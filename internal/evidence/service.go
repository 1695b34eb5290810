package evidence

import "context"

// DefaultListLimit caps evidence listings when the client does not ask for one.
const DefaultListLimit = 200

// CaseDirectory confirms that a case exists before evidence may reference
// it. Implemented by the cases service.
type CaseDirectory interface {
	Exists(ctx context.Context, publicID string) error
}

type Service struct {
	repo  Repository
	cases CaseDirectory
}

func NewService(repo Repository, cases CaseDirectory) *Service {
	return &Service{repo: repo, cases: cases}
}

// Add attaches a new evidence record to an existing case and returns its
// public id. The parent case is checked first; the check and the insert are
// two separate store operations with no atomicity between them.
func (s *Service) Add(ctx context.Context, req CreateEvidenceRequest) (string, error) {
	if err := s.cases.Exists(ctx, req.CaseID); err != nil {
		return "", err
	}

	e := &Evidence{
		CaseID:      req.CaseID,
		Type:        req.Type,
		URL:         req.URL,
		Description: req.Description,
	}
	id, err := s.repo.Insert(ctx, e)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// ListForCase returns evidence whose case_id equals the given public case
// id. The id is used as the stored string, not translated back to an
// ObjectID, so an unknown case simply yields an empty list.
func (s *Service) ListForCase(ctx context.Context, caseID string, limit int64) ([]Evidence, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.FindByCaseID(ctx, caseID, limit)
}
