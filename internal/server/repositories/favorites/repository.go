package favorites

import (
	"context"

	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, fav *models.Favorite) error
	Exists(ctx context.Context, userID, restaurantID string) (bool, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Favorite, error)
}
