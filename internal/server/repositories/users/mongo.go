package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

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

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := r.store.Users().InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, common.ErrorInternal
	}
	user.ID = oid

	return user, nil
}

func (r *MongoRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	user := &models.User{}
	err := r.store.Users().FindOne(ctx, bson.M{"username": username}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	return user, nil
}

func (r *MongoRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	err := r.store.Users().FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("store error: %w", storage.TranslateError(err))
	}

	return true, nil
}
