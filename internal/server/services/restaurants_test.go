package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lunchboxd/lunchboxd-server/internal/server/config"
	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
)

// fakeRestaurantsRepo records the filter and limit it was called with.
type fakeRestaurantsRepo struct {
	docs       []bson.M
	findErr    error
	gotFilter  bson.M
	gotLimit   int64
	nativeDocs []bson.M
	stringDocs []bson.M
	gotNative  []primitive.ObjectID
	gotStrings []string
	cuisines   []string
}

func (f *fakeRestaurantsRepo) Create(ctx context.Context, r *models.Restaurant) (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeRestaurantsRepo) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	f.gotFilter = filter
	f.gotLimit = limit
	return f.docs, f.findErr
}

func (f *fakeRestaurantsRepo) FindByNativeIDs(ctx context.Context, ids []primitive.ObjectID) ([]bson.M, error) {
	f.gotNative = ids
	return f.nativeDocs, f.findErr
}

func (f *fakeRestaurantsRepo) FindByStringIDs(ctx context.Context, ids []string) ([]bson.M, error) {
	f.gotStrings = ids
	return f.stringDocs, f.findErr
}

func (f *fakeRestaurantsRepo) DistinctCuisines(ctx context.Context) ([]string, error) {
	return f.cuisines, f.findErr
}

func testConfig() *config.Config {
	return &config.Config{ResultLimit: 100}
}

// ---- buildFilter ----

func TestBuildFilter_EmptyParams(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.M{}, buildFilter(SearchParams{}))
}

func TestBuildFilter_AllCategoryIsAbsent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.M{}, buildFilter(SearchParams{Category: "All"}))
	assert.Equal(t, bson.M{"cuisine": "Silog"}, buildFilter(SearchParams{Category: "Silog"}))
}

func TestBuildFilter_MembershipSets(t *testing.T) {
	t.Parallel()

	got := buildFilter(SearchParams{Budgets: "₱10-50,₱50-100", Sides: "Main Gate"})

	assert.Equal(t, bson.M{"$in": []string{"₱10-50", "₱50-100"}}, got["priceRange"])
	assert.Equal(t, bson.M{"$in": []string{"Main Gate"}}, got["sides"])
}

func TestBuildFilter_SearchIsQuotedSubstringMatch(t *testing.T) {
	t.Parallel()

	got := buildFilter(SearchParams{Search: "dim"})
	assert.Equal(t, primitive.Regex{Pattern: "dim", Options: "i"}, got["name"])

	// regex metacharacters match literally
	got = buildFilter(SearchParams{Search: "a.b*"})
	assert.Equal(t, primitive.Regex{Pattern: `a\.b\*`, Options: "i"}, got["name"])
}

func TestBuildFilter_CombinesClausesWithAnd(t *testing.T) {
	t.Parallel()

	got := buildFilter(SearchParams{
		Search:   "dim",
		Category: "Chinese",
		Budgets:  "₱10-50",
		Sides:    "North Gate,Main Gate",
	})

	require.Len(t, got, 4)
	assert.Equal(t, "Chinese", got["cuisine"])
	assert.Equal(t, bson.M{"$in": []string{"₱10-50"}}, got["priceRange"])
	assert.Equal(t, bson.M{"$in": []string{"North Gate", "Main Gate"}}, got["sides"])
}

// ---- Search ----

func TestSearch_ReshapesAndCaps(t *testing.T) {
	oid := primitive.NewObjectID()
	repo := &fakeRestaurantsRepo{docs: []bson.M{
		{"_id": oid, "name": "Dimsum Treats"},
		{"_id": "resto-7", "name": "Topside Diner"},
	}}
	svc := NewRestaurantService(repo, testConfig())

	got, err := svc.Search(context.Background(), SearchParams{Search: "dim"})
	require.NoError(t, err)

	assert.Equal(t, int64(100), repo.gotLimit)
	require.Len(t, got, 2)
	assert.Equal(t, oid.Hex(), got[0]["id"])
	assert.Equal(t, "resto-7", got[1]["id"])
	_, hasNative := got[0]["_id"]
	assert.False(t, hasNative)
}

func TestSearch_NoParamsSendsUnconstrainedFilter(t *testing.T) {
	repo := &fakeRestaurantsRepo{}
	svc := NewRestaurantService(repo, testConfig())

	_, err := svc.Search(context.Background(), SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, bson.M{}, repo.gotFilter)
}

// ---- Options ----

func TestOptions_PrefixesAllSentinel(t *testing.T) {
	repo := &fakeRestaurantsRepo{cuisines: []string{"Silog", "Chinese"}}
	svc := NewRestaurantService(repo, testConfig())

	got, err := svc.Options(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"All", "Silog", "Chinese"}, got.Categories)
	assert.NotEmpty(t, got.Budgets)
	assert.NotEmpty(t, got.Sides)
}
