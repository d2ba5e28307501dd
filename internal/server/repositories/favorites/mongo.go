package favorites

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
	"github.com/lunchboxd/lunchboxd-server/internal/server/storage"
)

type MongoRepository struct {
	store *storage.Store
}

func NewMongoRepository(store *storage.Store) *MongoRepository {
	return &MongoRepository{store: store}
}

func (r *MongoRepository) Create(ctx context.Context, fav *models.Favorite) error {
	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	if _, err := r.store.Favorites().InsertOne(ctx, fav); err != nil {
		return fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	return nil
}

func (r *MongoRepository) Exists(ctx context.Context, userID, restaurantID string) (bool, error) {
	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"userId": userID, "restaurantId": restaurantID}

	err := r.store.Favorites().FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	return true, nil
}

func (r *MongoRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Favorite, error) {
	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	cur, err := r.store.Favorites().Find(ctx, bson.M{"userId": userID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	var favs []models.Favorite
	if err := cur.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	return favs, nil
}
