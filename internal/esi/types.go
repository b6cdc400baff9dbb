package esi

import "github.com/industrialist/evemargin/internal/model"

// orderRecord is one entry of GET /markets/{region_id}/orders/.
type orderRecord struct {
	OrderID      int64   `json:"order_id"`
	TypeID       int32   `json:"type_id"`
	IsBuyOrder   bool    `json:"is_buy_order"`
	Price        float64 `json:"price"`
	VolumeRemain int64   `json:"volume_remain"`
	VolumeTotal  int64   `json:"volume_total"`
	LocationID   int64   `json:"location_id"`
	SystemID     int64   `json:"system_id"`
}

func (r orderRecord) toModel() model.MarketOrder {
	return model.MarketOrder{
		OrderID:      r.OrderID,
		TypeID:       r.TypeID,
		IsBuyOrder:   r.IsBuyOrder,
		Price:        r.Price,
		VolumeRemain: r.VolumeRemain,
		VolumeTotal:  r.VolumeTotal,
		LocationID:   r.LocationID,
		SystemID:     r.SystemID,
	}
}
