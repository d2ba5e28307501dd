package restaurants

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lunchboxd/lunchboxd-server/internal/common"
	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
	"github.com/lunchboxd/lunchboxd-server/internal/server/storage"
)

type MongoRepository struct {
	store *storage.Store
}

func NewMongoRepository(store *storage.Store) *MongoRepository {
	return &MongoRepository{store: store}
}

func (r *MongoRepository) Create(ctx context.Context, restaurant *models.Restaurant) (string, error) {
	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	res, err := r.store.Restaurants().InsertOne(ctx, restaurant)
	if err != nil {
		return "", fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", common.ErrorInternal
	}

	return oid.Hex(), nil
}

func (r *MongoRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	cur, err := r.store.Restaurants().Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	return docs, nil
}

func (r *MongoRepository) FindByNativeIDs(ctx context.Context, ids []primitive.ObjectID) ([]bson.M, error) {
	return r.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, int64(len(ids)))
}

func (r *MongoRepository) FindByStringIDs(ctx context.Context, ids []string) ([]bson.M, error) {
	return r.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, int64(len(ids)))
}

func (r *MongoRepository) DistinctCuisines(ctx context.Context) ([]string, error) {
	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	values, err := r.store.Restaurants().Distinct(ctx, "cuisine", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	cuisines := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			cuisines = append(cuisines, s)
		}
	}

	return cuisines, nil
}
