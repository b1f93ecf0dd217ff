package entities

// Service is a purchasable document service from the catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//   - `position` drives the deterministic catalog order used by the
//     "most popular" fallback.
//
// Monetary representation:
//   - BasePrice is in minor currency units (centavos). Totals are plain
//     integer additions, never floating point.
//
// Services are owned by the catalog; conversations treat them as read-only.

type Service struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	BasePrice     int64  `json:"base_price"`
	EstimatedDays int    `json:"estimated_days"`
	Position      int    `json:"position"`
	Active        bool   `json:"active"`
}
