// Package storage owns the MongoDB client: connection setup, the named
// collection handles, per-call deadlines, and translation of driver
// failures into the shared error taxonomy.
package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lunchboxd/lunchboxd-server/internal/common"
)

const (
	collUsers       = "users"
	collRestaurants = "restaurants"
	collFavorites   = "favorites"
)

// Store wraps a connected MongoDB database. It is the single shared
// mutable resource in the process; everything else is request-scoped.
type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// NewStore connects to MongoDB and pings it once so a bad URI fails fast.
func NewStore(ctx context.Context, uri, dbName string, timeout time.Duration) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, TranslateError(err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, TranslateError(err)
	}

	return &Store{client: client, db: client.Database(dbName), timeout: timeout}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Users() *mongo.Collection       { return s.db.Collection(collUsers) }
func (s *Store) Restaurants() *mongo.Collection { return s.db.Collection(collRestaurants) }
func (s *Store) Favorites() *mongo.Collection   { return s.db.Collection(collFavorites) }

// WithTimeout bounds a store call with the configured deadline.
func (s *Store) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// TranslateError maps driver-level failures onto the shared taxonomy.
// Timeouts and network errors become ErrStoreUnavailable, the only kind a
// caller may retry; anything else passes through unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return common.ErrStoreUnavailable
	}
	return err
}
