// Package model defines shared domain types for the margin estimator.
//
// Conventions:
//   - Prices: float64 ISK, as delivered by ESI
//   - Quantities/volumes: int64 units
//   - IDs: int32 for type IDs, int64 for order/location/system IDs
//
// Item identity is the numeric type ID alone; display names are
// cosmetic and never participate in equality.
package model
