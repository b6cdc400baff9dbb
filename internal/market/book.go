package market

import (
	"sort"

	"github.com/industrialist/evemargin/internal/model"
)

// Book is an order-book snapshot for a single type and side, sorted
// ascending by unit price (best price first for a buyer).
type Book struct {
	orders []model.MarketOrder
}

// NewBook builds a snapshot from raw orders. Orders outside systemID
// are dropped when systemID is non-zero. Sorting is stable, so the
// relative order of equal-priced orders is preserved.
func NewBook(orders []model.MarketOrder, systemID int64) Book {
	filtered := make([]model.MarketOrder, 0, len(orders))
	for _, o := range orders {
		if systemID != 0 && o.SystemID != systemID {
			continue
		}
		filtered = append(filtered, o)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Price < filtered[j].Price
	})

	return Book{orders: filtered}
}

// Empty reports whether the book holds no orders. An empty book means
// no liquidity, not a fault.
func (b Book) Empty() bool {
	return len(b.orders) == 0
}

// Len returns the number of orders in the book.
func (b Book) Len() int {
	return len(b.orders)
}

// BestPrice returns the lowest unit price in the book. The second
// return value is false when the book is empty.
func (b Book) BestPrice() (float64, bool) {
	if len(b.orders) == 0 {
		return 0, false
	}
	return b.orders[0].Price, true
}

// Depth returns the cumulative remaining volume across all orders.
func (b Book) Depth() int64 {
	var total int64
	for _, o := range b.orders {
		total += o.VolumeRemain
	}
	return total
}
