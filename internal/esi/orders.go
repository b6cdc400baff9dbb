package esi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/industrialist/evemargin/internal/model"
)

// Orders fetches the full region order book for one type and side,
// following the X-Pages header through every page. An empty book is a
// valid result, not an error.
func (c *Client) Orders(ctx context.Context, typeID int32, side model.OrderSide) ([]model.MarketOrder, error) {
	path := fmt.Sprintf("/markets/%d/orders/", c.regionID)

	var all []model.MarketOrder
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("datasource", c.datasource)
		query.Set("order_type", string(side))
		query.Set("type_id", strconv.FormatInt(int64(typeID), 10))
		query.Set("page", strconv.Itoa(page))

		var records []orderRecord
		header, err := c.get(ctx, path, query, &records)
		if err != nil {
			return nil, fmt.Errorf("get %s orders for type %d page %d: %w", side, typeID, page, err)
		}

		for _, r := range records {
			all = append(all, r.toModel())
		}

		pages, _ := strconv.Atoi(header.Get("X-Pages"))
		if page >= pages {
			break
		}
	}

	c.logger.Debug("fetched order book",
		"region_id", c.regionID,
		"type_id", typeID,
		"side", side,
		"orders", len(all),
	)

	return all, nil
}
