package evidence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fraudwatch/case-manager/case-manager-backend/internal/apierr"
)

// Repository is the persistence gateway for evidence documents.
type Repository interface {
	Insert(ctx context.Context, e *Evidence) (primitive.ObjectID, error)
	FindByCaseID(ctx context.Context, caseID string, limit int64) ([]Evidence, error)
}

type mongoRepository struct {
	db *mongo.Database
}

// NewRepository returns a Mongo-backed Repository. A nil database handle
// degrades every operation to apierr.ErrStoreUnavailable.
func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) collection() (*mongo.Collection, error) {
	if r.db == nil {
		return nil, apierr.ErrStoreUnavailable
	}
	return r.db.Collection(Collection), nil
}

func (r *mongoRepository) Insert(ctx context.Context, e *Evidence) (primitive.ObjectID, error) {
	coll, err := r.collection()
	if err != nil {
		return primitive.NilObjectID, err
	}
	res, err := coll.InsertOne(ctx, e)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert evidence: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoRepository) FindByCaseID(ctx context.Context, caseID string, limit int64) ([]Evidence, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, bson.M{"case_id": caseID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list evidence: %w", err)
	}
	defer cursor.Close(ctx)

	results := []Evidence{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode evidence: %w", err)
	}
	return results, nil
}
