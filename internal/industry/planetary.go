package industry

import (
	"context"

	"github.com/industrialist/evemargin/internal/market"
	"github.com/industrialist/evemargin/internal/model"
)

// Production wraps one planetary schematic with customs fee
// accounting. Imports are the schematic's ingredients, exports a
// single unit of its product.
type Production struct {
	Recipe              model.PIRecipe
	TaxRate             float64 // Customs office tax, 0-1
	CommandCenterLaunch bool    // Exports launched from a command center pay 1.5x
}

// PIEvaluation extends a market evaluation with customs fees.
type PIEvaluation struct {
	Evaluation
	ImportCost    float64
	ExportCost    float64
	OverallProfit float64 // Profit - ImportCost - ExportCost
}

// ImportCost sums the import customs fee over all ingredient
// quantities. Fees derive from tier base values, never live prices.
func (p Production) ImportCost() float64 {
	var cost float64
	for _, ing := range p.Recipe.Ingredients {
		cost += float64(ing.Quantity) * market.ImportFee(ing.BaseValue(), p.TaxRate)
	}
	return cost
}

// ExportCost returns the customs fee for exporting one unit of the
// product.
func (p Production) ExportCost() float64 {
	return market.ExportFee(p.Recipe.Product.BaseValue(), p.TaxRate, p.CommandCenterLaunch)
}

// OverallProfit evaluates the schematic against the market and
// subtracts import and export customs fees.
func (p Production) OverallProfit(ctx context.Context, m *market.Market) (PIEvaluation, error) {
	ev, err := Evaluate(ctx, m, p.Recipe.Recipe())
	if err != nil {
		return PIEvaluation{}, err
	}

	pi := PIEvaluation{
		Evaluation: ev,
		ImportCost: p.ImportCost(),
		ExportCost: p.ExportCost(),
	}
	pi.OverallProfit = ev.Profit - pi.ImportCost - pi.ExportCost

	return pi, nil
}
