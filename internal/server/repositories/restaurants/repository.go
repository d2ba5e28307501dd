package restaurants

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
)

// Repository reads restaurant records as raw documents. Two generations of
// data co-exist in the collection: API-inserted records keyed by ObjectID
// and bulk-imported records keyed by their original string identifier,
// hence the two lookup-by-id variants.
type Repository interface {
	Create(ctx context.Context, r *models.Restaurant) (string, error)
	Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error)
	FindByNativeIDs(ctx context.Context, ids []primitive.ObjectID) ([]bson.M, error)
	FindByStringIDs(ctx context.Context, ids []string) ([]bson.M, error)
	DistinctCuisines(ctx context.Context) ([]string, error)
}
