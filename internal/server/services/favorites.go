package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lunchboxd/lunchboxd-server/internal/server/config"
	"github.com/lunchboxd/lunchboxd-server/internal/server/docid"
	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
	"github.com/lunchboxd/lunchboxd-server/internal/server/repositories/favorites"
	"github.com/lunchboxd/lunchboxd-server/internal/server/repositories/restaurants"
)

// FavoriteService links users to saved restaurants and resolves the links
// back to full restaurant records.
type FavoriteService struct {
	favRepo     favorites.Repository
	restoRepo   restaurants.Repository
	resultLimit int64
}

func NewFavoriteService(favRepo favorites.Repository, restoRepo restaurants.Repository, cfg *config.Config) *FavoriteService {
	return &FavoriteService{favRepo: favRepo, restoRepo: restoRepo, resultLimit: cfg.ResultLimit}
}

// Add stores a favorite link unless one already exists for the pair.
// The second add of the same pair reports false with no write; it is not
// an error. The existence check and insert are sequential, not atomic.
func (s *FavoriteService) Add(ctx context.Context, userID, restaurantID string) (bool, error) {
	exists, err := s.favRepo.Exists(ctx, userID, restaurantID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if err := s.favRepo.Create(ctx, &models.Favorite{UserID: userID, RestaurantID: restaurantID}); err != nil {
		return false, err
	}

	return true, nil
}

// Resolve returns the full restaurant records behind a user's favorite
// links. Identifiers that do not parse as native keys are dropped from
// the lookup set — they cannot match any record and must not abort the
// query. If the native-key lookup comes back empty while links exist, the
// raw string identifiers are retried against string-keyed records, since
// the bulk import path stored restaurants under their original string
// keys.
func (s *FavoriteService) Resolve(ctx context.Context, userID string) ([]bson.M, error) {
	favs, err := s.favRepo.ListByUser(ctx, userID, s.resultLimit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.RestaurantID)
	}

	natives := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := docid.ToNative(id)
		if err != nil {
			continue
		}
		natives = append(natives, oid)
	}

	var docs []bson.M
	if len(natives) > 0 {
		docs, err = s.restoRepo.FindByNativeIDs(ctx, natives)
		if err != nil {
			return nil, err
		}
	}

	if len(docs) == 0 && len(ids) > 0 {
		docs, err = s.restoRepo.FindByStringIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, docid.ToExternal(doc))
	}

	return out, nil
}
