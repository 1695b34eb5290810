package cases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fraudwatch/case-manager/case-manager-backend/internal/apierr"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, c *Case) (primitive.ObjectID, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Case), args.Error(1)
}

func (m *MockRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]Case, error) {
	args := m.Called(ctx, filter, limit)
	return args.Get(0).([]Case), args.Error(1)
}

func (m *MockRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateDefaultsStatusToOpen(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	oid := primitive.NewObjectID()
	var inserted *Case
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*cases.Case")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*Case)
		}).
		Return(oid, nil)

	id, err := service.Create(ctx, CreateCaseRequest{Username: "scammer123"})

	assert.NoError(t, err)
	assert.Equal(t, oid.Hex(), id)
	assert.Equal(t, "scammer123", inserted.Username)
	assert.Equal(t, StatusOpen, inserted.Status)
	assert.Nil(t, inserted.RiskScore)

	mockRepo.AssertExpectations(t)
}

func TestGetRejectsMalformedID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	_, err := service.Get(context.Background(), "definitely-not-hex")

	assert.ErrorIs(t, err, apierr.ErrInvalidID)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetMissingCase(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	oid := primitive.NewObjectID()
	mockRepo.On("FindByID", ctx, oid).Return(nil, apierr.ErrNotFound)

	_, err := service.Get(ctx, oid.Hex())

	assert.ErrorIs(t, err, apierr.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestListOmitsAbsentFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter ListFilter
		query  bson.M
		limit  int64
	}{
		{
			name:   "no filters",
			filter: ListFilter{},
			query:  bson.M{},
			limit:  DefaultListLimit,
		},
		{
			name:   "username only",
			filter: ListFilter{Username: "scammer123"},
			query:  bson.M{"username": "scammer123"},
			limit:  DefaultListLimit,
		},
		{
			name:   "username and status with limit",
			filter: ListFilter{Username: "scammer123", Status: StatusClosed, Limit: 5},
			query:  bson.M{"username": "scammer123", "status": StatusClosed},
			limit:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo)
			ctx := context.Background()

			mockRepo.On("Find", ctx, tt.query, tt.limit).Return([]Case{}, nil)

			_, err := service.List(ctx, tt.filter)

			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateWithEmptyPayloadSkipsStore(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	updated, err := service.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateCaseRequest{})

	assert.NoError(t, err)
	assert.False(t, updated)
	mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateWritesOnlySuppliedFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	oid := primitive.NewObjectID()
	notes := "followed the money"
	mockRepo.On("UpdateFields", ctx, oid, bson.M{"notes": notes}).Return(int64(1), nil)

	updated, err := service.Update(ctx, oid.Hex(), UpdateCaseRequest{Notes: &notes})

	assert.NoError(t, err)
	assert.True(t, updated)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUnmatchedID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	oid := primitive.NewObjectID()
	status := StatusClosed
	mockRepo.On("UpdateFields", ctx, oid, bson.M{"status": status}).Return(int64(0), nil)

	_, err := service.Update(ctx, oid.Hex(), UpdateCaseRequest{Status: &status})

	assert.ErrorIs(t, err, apierr.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUpdateFieldsSubsets(t *testing.T) {
	status := StatusInReview
	notes := "pending bank records"
	score := 75

	tests := []struct {
		name string
		req  UpdateCaseRequest
		want bson.M
	}{
		{"nothing", UpdateCaseRequest{}, bson.M{}},
		{"status only", UpdateCaseRequest{Status: &status}, bson.M{"status": status}},
		{"notes only", UpdateCaseRequest{Notes: &notes}, bson.M{"notes": notes}},
		{"score only", UpdateCaseRequest{RiskScore: &score}, bson.M{"risk_score": score}},
		{
			"all three",
			UpdateCaseRequest{Status: &status, Notes: &notes, RiskScore: &score},
			bson.M{"status": status, "notes": notes, "risk_score": score},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Fields())
		})
	}
}
