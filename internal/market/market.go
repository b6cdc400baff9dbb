package market

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/industrialist/evemargin/internal/model"
)

// OrderFetcher retrieves the raw region order book for one type and
// side. Implemented by the ESI client; tests supply stubs.
type OrderFetcher interface {
	Orders(ctx context.Context, typeID int32, side model.OrderSide) ([]model.MarketOrder, error)
}

// Market resolves fills against live order books within a configured
// scope. It is stateless apart from its configuration: every call
// fetches a fresh snapshot, and resolutions never share consumption
// state.
type Market struct {
	fetcher  OrderFetcher
	systemID int64 // 0 = whole region
	fees     FeeConfig
	logger   *slog.Logger
}

// Option configures a Market.
type Option func(*Market)

// WithSystemScope restricts snapshots to orders in one solar system.
func WithSystemScope(systemID int64) Option {
	return func(m *Market) {
		m.systemID = systemID
	}
}

// WithFees sets the sales tax and broker fee rates.
func WithFees(fees FeeConfig) Option {
	return func(m *Market) {
		m.fees = fees
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Market) {
		m.logger = logger
	}
}

// New creates a Market over the given order source.
func New(fetcher OrderFetcher, opts ...Option) *Market {
	m := &Market{
		fetcher: fetcher,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Fees returns the configured fee rates.
func (m *Market) Fees() FeeConfig {
	return m.fees
}

// Snapshot fetches the current book for one item and side within the
// market's system scope.
func (m *Market) Snapshot(ctx context.Context, item model.Item, side model.OrderSide) (Book, error) {
	orders, err := m.fetcher.Orders(ctx, item.TypeID, side)
	if err != nil {
		return Book{}, fmt.Errorf("fetch %s orders for type %d: %w", side, item.TypeID, err)
	}
	return NewBook(orders, m.systemID), nil
}

// BuyCost resolves the cost of acquiring qty units from the sell-side
// book. Liquidity problems are reported in the Fill, not as errors;
// the error return covers transport failures only.
func (m *Market) BuyCost(ctx context.Context, item model.Item, qty int64) (Fill, error) {
	book, err := m.Snapshot(ctx, item, model.SideSell)
	if err != nil {
		return Fill{}, err
	}

	fill := book.Fill(qty)
	switch fill.State {
	case FillPartial:
		m.logger.Warn("insufficient market depth",
			"type_id", item.TypeID,
			"item", item.Name,
			"requested", fill.Requested,
			"missing", fill.Shortfall,
			"assumed_price", fill.LastPrice,
		)
	case FillNone:
		m.logger.Warn("no sell orders",
			"type_id", item.TypeID,
			"item", item.Name,
		)
	}

	return fill, nil
}

// SellValue returns the proceeds of selling qty units at the current
// best ask, net of fees. Zero when no sell orders exist.
func (m *Market) SellValue(ctx context.Context, item model.Item, qty int64) (float64, error) {
	book, err := m.Snapshot(ctx, item, model.SideSell)
	if err != nil {
		return 0, err
	}

	if book.Empty() {
		m.logger.Warn("no sell orders to price against",
			"type_id", item.TypeID,
			"item", item.Name,
		)
		return 0, nil
	}

	return SellProceeds(book, qty, m.fees), nil
}
