package cases

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fraudwatch/case-manager/case-manager-backend/internal/apierr"
)

// Repository is the persistence gateway for case documents.
type Repository interface {
	Insert(ctx context.Context, c *Case) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Case, error)
	Find(ctx context.Context, filter bson.M, limit int64) ([]Case, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
}

type mongoRepository struct {
	db *mongo.Database
}

// NewRepository returns a Mongo-backed Repository. A nil database handle is
// accepted: every operation then fails with apierr.ErrStoreUnavailable,
// matching the degraded mode used when the store is not configured.
func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) collection() (*mongo.Collection, error) {
	if r.db == nil {
		return nil, apierr.ErrStoreUnavailable
	}
	return r.db.Collection(Collection), nil
}

func (r *mongoRepository) Insert(ctx context.Context, c *Case) (primitive.ObjectID, error) {
	coll, err := r.collection()
	if err != nil {
		return primitive.NilObjectID, err
	}
	res, err := coll.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert case: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Case, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}
	var c Case
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apierr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find case: %w", err)
	}
	return &c, nil
}

func (r *mongoRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]Case, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer cursor.Close(ctx)

	results := []Case{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode cases: %w", err)
	}
	return results, nil
}

func (r *mongoRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	coll, err := r.collection()
	if err != nil {
		return 0, err
	}
	res, err := coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("update case: %w", err)
	}
	return res.MatchedCount, nil
}
