package evidence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fraudwatch/case-manager/case-manager-backend/internal/apierr"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, e *Evidence) (primitive.ObjectID, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockRepository) FindByCaseID(ctx context.Context, caseID string, limit int64) ([]Evidence, error) {
	args := m.Called(ctx, caseID, limit)
	return args.Get(0).([]Evidence), args.Error(1)
}

type stubCaseDirectory struct {
	err error
}

func (s stubCaseDirectory) Exists(ctx context.Context, publicID string) error {
	return s.err
}

func TestAddEvidenceRejectsUnknownCase(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, stubCaseDirectory{err: apierr.ErrNotFound})

	_, err := service.Add(context.Background(), CreateEvidenceRequest{
		CaseID: primitive.NewObjectID().Hex(),
		Type:   "screenshot",
	})

	assert.ErrorIs(t, err, apierr.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddEvidenceRejectsMalformedCaseID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, stubCaseDirectory{err: apierr.ErrInvalidID})

	_, err := service.Add(context.Background(), CreateEvidenceRequest{
		CaseID: "not-an-id",
		Type:   "screenshot",
	})

	assert.ErrorIs(t, err, apierr.ErrInvalidID)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddEvidenceInsertsAfterParentCheck(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, stubCaseDirectory{})
	ctx := context.Background()

	caseID := primitive.NewObjectID().Hex()
	oid := primitive.NewObjectID()
	var inserted *Evidence
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*evidence.Evidence")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*Evidence)
		}).
		Return(oid, nil)

	id, err := service.Add(ctx, CreateEvidenceRequest{CaseID: caseID, Type: "screenshot"})

	assert.NoError(t, err)
	assert.Equal(t, oid.Hex(), id)
	assert.Equal(t, caseID, inserted.CaseID)
	assert.Equal(t, "screenshot", inserted.Type)
	mockRepo.AssertExpectations(t)
}

func TestListForCaseUsesStringEqualityFilter(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, stubCaseDirectory{})
	ctx := context.Background()

	caseID := primitive.NewObjectID().Hex()
	records := []Evidence{{CaseID: caseID, Type: "chat_log"}}
	mockRepo.On("FindByCaseID", ctx, caseID, int64(DefaultListLimit)).Return(records, nil)

	got, err := service.ListForCase(ctx, caseID, 0)

	assert.NoError(t, err)
	assert.Equal(t, records, got)
	mockRepo.AssertExpectations(t)
}

func TestListForCaseHonorsLimit(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, stubCaseDirectory{})
	ctx := context.Background()

	mockRepo.On("FindByCaseID", ctx, "abc", int64(3)).Return([]Evidence{}, nil)

	_, err := service.ListForCase(ctx, "abc", 3)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
