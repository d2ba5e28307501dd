package services

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lunchboxd/lunchboxd-server/internal/server/config"
	"github.com/lunchboxd/lunchboxd-server/internal/server/docid"
	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
	"github.com/lunchboxd/lunchboxd-server/internal/server/repositories/restaurants"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "All"

// SearchParams are the independent optional restaurant filters. Budgets
// and Sides are comma-delimited sets, matching the query-string format the
// client sends.
type SearchParams struct {
	Search   string
	Category string
	Budgets  string
	Sides    string
}

// FilterOptions is the choice lists the client renders its filter UI from.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Budgets    []string `json:"budgets"`
	Sides      []string `json:"sides"`
}

// RestaurantService runs restaurant queries and shapes the results for
// the route layer.
type RestaurantService struct {
	repo        restaurants.Repository
	resultLimit int64
}

func NewRestaurantService(repo restaurants.Repository, cfg *config.Config) *RestaurantService {
	return &RestaurantService{repo: repo, resultLimit: cfg.ResultLimit}
}

// buildFilter folds the present parameters into one conjunction. Absent
// parameters contribute no clause, and the "All" category is treated as
// absent. The free-text clause is a case-insensitive substring match on
// the name field; the input is quoted so it is never interpreted as a
// pattern.
func buildFilter(p SearchParams) bson.M {
	filter := bson.M{}

	if p.Category != "" && p.Category != CategoryAll {
		filter["cuisine"] = p.Category
	}
	if p.Sides != "" {
		filter["sides"] = bson.M{"$in": splitList(p.Sides)}
	}
	if p.Budgets != "" {
		filter["priceRange"] = bson.M{"$in": splitList(p.Budgets)}
	}
	if p.Search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(p.Search), Options: "i"}
	}

	return filter
}

func splitList(s string) []string {
	return strings.Split(s, ",")
}

// Search returns the restaurants matching the given parameters, in store
// order, silently truncated at the configured cap. An empty parameter set
// is the unconstrained query.
func (s *RestaurantService) Search(ctx context.Context, p SearchParams) ([]bson.M, error) {
	docs, err := s.repo.Find(ctx, buildFilter(p), s.resultLimit)
	if err != nil {
		return nil, err
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, docid.ToExternal(doc))
	}

	return out, nil
}

// Create inserts a restaurant record and returns its external identifier.
func (s *RestaurantService) Create(ctx context.Context, r *models.Restaurant) (string, error) {
	return s.repo.Create(ctx, r)
}

// Options returns the filter choice lists: the distinct cuisines present
// in the collection prefixed with the "All" sentinel, plus the static
// budget and pickup-area sets.
func (s *RestaurantService) Options(ctx context.Context) (*FilterOptions, error) {
	cuisines, err := s.repo.DistinctCuisines(ctx)
	if err != nil {
		return nil, err
	}

	return &FilterOptions{
		Categories: append([]string{CategoryAll}, cuisines...),
		Budgets:    models.BudgetOptions,
		Sides:      models.SideOptions,
	}, nil
}
