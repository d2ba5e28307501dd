package models

// Favorite links a user to a saved restaurant. Both sides are external
// string identifiers; at most one link may exist per pair, enforced by a
// pre-insert existence check rather than a store constraint.
type Favorite struct {
	UserID       string `bson:"userId" json:"userId" binding:"required"`
	RestaurantID string `bson:"restaurantId" json:"restaurantId" binding:"required"`
}
