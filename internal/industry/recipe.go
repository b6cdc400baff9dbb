package industry

import (
	"context"
	"fmt"

	"github.com/industrialist/evemargin/internal/market"
	"github.com/industrialist/evemargin/internal/model"
)

// IngredientFill pairs one bill-of-materials line with its resolved
// market fill.
type IngredientFill struct {
	Item     model.Item
	Quantity int64
	Fill     market.Fill
}

// Evaluation is the priced result of one recipe against one market.
type Evaluation struct {
	Recipe          model.Recipe
	Ingredients     []IngredientFill
	IngredientsCost float64 // Σ ingredient buy fills, ISK
	ProductPrice    float64 // Net proceeds of selling 1 product, ISK
	Profit          float64 // ProductPrice - IngredientsCost
}

// Insufficient reports whether any ingredient fill was flagged for
// missing market depth. The figures are still produced, degraded to
// the worst-price estimate.
func (e Evaluation) Insufficient() bool {
	for _, ing := range e.Ingredients {
		if ing.Fill.Insufficient() {
			return true
		}
	}
	return false
}

// Evaluate prices a recipe against the market. Each ingredient is
// resolved independently against a fresh order-book snapshot, one
// sequential fetch per ingredient; consuming units for one line never
// depletes the book another line sees.
func Evaluate(ctx context.Context, m *market.Market, r model.Recipe) (Evaluation, error) {
	ev := Evaluation{
		Recipe:      r,
		Ingredients: make([]IngredientFill, 0, len(r.Ingredients)),
	}

	for _, ing := range r.Ingredients {
		fill, err := m.BuyCost(ctx, ing.Item, ing.Quantity)
		if err != nil {
			return Evaluation{}, fmt.Errorf("price ingredient %q: %w", ing.Name, err)
		}
		ev.Ingredients = append(ev.Ingredients, IngredientFill{
			Item:     ing.Item,
			Quantity: ing.Quantity,
			Fill:     fill,
		})
		ev.IngredientsCost += fill.Cost
	}

	price, err := m.SellValue(ctx, r.Product, 1)
	if err != nil {
		return Evaluation{}, fmt.Errorf("price product %q: %w", r.Product.Name, err)
	}
	ev.ProductPrice = price
	ev.Profit = price - ev.IngredientsCost

	return ev, nil
}

// IngredientsCost returns the cost of buying every ingredient of the
// recipe from the sell-side book.
func IngredientsCost(ctx context.Context, m *market.Market, r model.Recipe) (float64, error) {
	var sum float64
	for _, ing := range r.Ingredients {
		fill, err := m.BuyCost(ctx, ing.Item, ing.Quantity)
		if err != nil {
			return 0, fmt.Errorf("price ingredient %q: %w", ing.Name, err)
		}
		sum += fill.Cost
	}
	return sum, nil
}

// ProductPrice returns the net proceeds of selling one unit of the
// recipe's product, taxes deducted.
func ProductPrice(ctx context.Context, m *market.Market, r model.Recipe) (float64, error) {
	return m.SellValue(ctx, r.Product, 1)
}

// Profit returns product proceeds minus ingredient cost.
func Profit(ctx context.Context, m *market.Market, r model.Recipe) (float64, error) {
	ev, err := Evaluate(ctx, m, r)
	if err != nil {
		return 0, err
	}
	return ev.Profit, nil
}
