package models

// Restaurant is the insert shape for a restaurant record. Reads come back
// as raw documents (bson.M) because bulk-imported records may carry a
// string-typed native key that a typed struct would not survive.
type Restaurant struct {
	Name       string  `bson:"name" json:"name" binding:"required"`
	Cuisine    string  `bson:"cuisine" json:"cuisine" binding:"required"`
	Rating     float64 `bson:"rating" json:"rating"`
	Location   string  `bson:"location" json:"location" binding:"required"`
	PriceRange string  `bson:"priceRange" json:"priceRange" binding:"required"`
	Sides      string  `bson:"sides" json:"sides" binding:"required"`
	Image      string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Sides tags a restaurant can carry: the pickup areas around campus.
var SideOptions = []string{
	"Main Gate",
	"Gate Six",
	"Inside the School",
	"North Gate",
	"Hospital Gate",
}

// BudgetOptions are the price-range categories used by the filter UI.
var BudgetOptions = []string{"₱10-50", "₱50-100", "₱100+"}
