package market

// FeeConfig holds the proportional deductions levied on sales.
// Purchases carry no fee in this model; tax falls on the seller.
type FeeConfig struct {
	SalesTax  float64 // Fraction of sale price, 0-1
	BrokerFee float64 // Fraction of sale price, 0-1
}

// SellProceeds returns the ISK received for selling qty units at the
// current best ask, net of sales tax and broker fee.
//
// Only the single lowest-priced sell order is considered: the seller
// is assumed to price at current best-ask to transact. This is a
// deliberate policy, not a depth-aware resolution like Fill. An empty
// book yields zero proceeds.
func SellProceeds(b Book, qty int64, fees FeeConfig) float64 {
	best, ok := b.BestPrice()
	if !ok {
		return 0
	}
	return best * float64(qty) * (1 - fees.SalesTax - fees.BrokerFee)
}

// ImportFee returns the per-unit customs fee for importing a commodity
// with the given tier base value to a planet.
func ImportFee(baseValue, taxRate float64) float64 {
	return baseValue * taxRate * 0.5
}

// ExportFee returns the per-unit customs fee for exporting a commodity
// with the given tier base value. Launching from a command center
// instead of a launchpad raises the fee by half.
func ExportFee(baseValue, taxRate float64, commandCenterLaunch bool) float64 {
	if commandCenterLaunch {
		return baseValue * taxRate * 1.5
	}
	return baseValue * taxRate
}
