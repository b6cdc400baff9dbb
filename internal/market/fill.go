package market

// FillState classifies the liquidity outcome of a fill.
type FillState int

const (
	// FillComplete means the book covered the full requested quantity.
	FillComplete FillState = iota

	// FillPartial means market depth ran out. The shortfall is priced
	// at the most expensive order consumed, a conservative estimate,
	// not a real market price.
	FillPartial

	// FillNone means the book held no orders at all. Cost is zero and
	// nothing was fillable; distinct from a genuine zero-cost fill.
	FillNone
)

// Fill is the result of resolving a quantity against a Book.
type Fill struct {
	Requested int64     // Units asked for
	Filled    int64     // Units covered by real orders
	Shortfall int64     // Units priced heuristically at LastPrice
	Cost      float64   // Total ISK, including the shortfall estimate
	LastPrice float64   // Most expensive unit price consumed
	State     FillState // Liquidity outcome
}

// Insufficient reports whether the book could not cover the request.
func (f Fill) Insufficient() bool {
	return f.State != FillComplete
}

// Fill resolves qty units against the book, consuming orders greedily
// in ascending price order. The order that satisfies the remainder is
// consumed only partially; cheaper orders are never skipped.
//
// qty <= 0 returns a complete zero fill without inspecting any order.
// An empty book returns a FillNone result. A book with insufficient
// cumulative depth returns FillPartial with only the shortfall priced
// at the last consumed order's price.
func (b Book) Fill(qty int64) Fill {
	f := Fill{Requested: qty, State: FillComplete}
	if qty <= 0 {
		return f
	}

	if len(b.orders) == 0 {
		f.State = FillNone
		f.Shortfall = qty
		return f
	}

	remaining := qty
	for _, o := range b.orders {
		if o.VolumeRemain >= remaining {
			// This order covers the rest; take exactly what is needed.
			f.Cost += o.Price * float64(remaining)
			f.Filled += remaining
			f.LastPrice = o.Price
			remaining = 0
			break
		}

		f.Cost += o.Price * float64(o.VolumeRemain)
		f.Filled += o.VolumeRemain
		f.LastPrice = o.Price
		remaining -= o.VolumeRemain
	}

	if remaining > 0 {
		// Book exhausted. Assume the worst price seen for the rest.
		f.State = FillPartial
		f.Shortfall = remaining
		f.Cost += f.LastPrice * float64(remaining)
	}

	return f
}
