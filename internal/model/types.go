package model

// OrderSide selects which half of an order book a request covers.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// Item identifies a tradeable type. Two Items with the same TypeID are
// interchangeable for costing regardless of Name.
type Item struct {
	TypeID int32  // ESI type ID, the sole identity
	Name   string // Display name, cosmetic
}

// Equal reports whether both items refer to the same type.
func (i Item) Equal(other Item) bool {
	return i.TypeID == other.TypeID
}

// MarketOrder is an immutable snapshot of one outstanding order at
// fetch time.
type MarketOrder struct {
	OrderID      int64   // Primary key (from ESI)
	TypeID       int32   // Type being traded
	IsBuyOrder   bool    // true = buy order, false = sell order
	Price        float64 // Unit price in ISK
	VolumeRemain int64   // Units still available/wanted
	VolumeTotal  int64   // Units at order creation
	LocationID   int64   // Station or structure
	SystemID     int64   // Solar system, used for scope filtering
}

// Ingredient is one line of a recipe's bill of materials.
type Ingredient struct {
	Item
	Quantity int64 // Units required per run
}

// Recipe maps a product to the ingredients required to build it.
// Ingredient type IDs are unique within a recipe.
type Recipe struct {
	Product     Item
	Ingredients []Ingredient
}

// Commodity tier base values in ISK, used for planetary import/export
// fee math instead of live market prices.
// See https://wiki.eveuniversity.org/Planetary_Industry
var tierBaseValues = map[int]float64{
	0: 5,
	1: 400,
	2: 7_200,
	3: 60_000,
	4: 1_200_000,
}

// PlanetaryItem is an Item carrying planetary-industry attributes.
// Composition rather than a subtype: only planetary recipe contexts
// construct it, everything market-facing sees the embedded Item.
type PlanetaryItem struct {
	Item
	Tier int // Commodity tier, 0-4
}

// BaseValue returns the fixed ISK value customs fees are computed
// from. Unknown tiers value at zero.
func (p PlanetaryItem) BaseValue() float64 {
	return tierBaseValues[p.Tier]
}

// PIIngredient is one import line of a planetary recipe.
type PIIngredient struct {
	PlanetaryItem
	Quantity int64
}

// PIRecipe is a planetary production schematic. Every participating
// item carries a commodity tier.
type PIRecipe struct {
	Product     PlanetaryItem
	Ingredients []PIIngredient
}

// Recipe strips the planetary attributes for market costing.
func (r PIRecipe) Recipe() Recipe {
	ingredients := make([]Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = Ingredient{Item: ing.Item, Quantity: ing.Quantity}
	}
	return Recipe{Product: r.Product.Item, Ingredients: ingredients}
}
