package ingest

import "github.com/freightlens/freightlens/internal/model"

// Columns maps the engine's logical fields to source column headers. The
// defaults match the logistics export format; overrides come from
// configuration when a customer file uses different headers.
type Columns struct {
	OrderDate string
	Revenue   string

	Pickup     string
	Shipping   string
	Management string
	Delivery   string

	// Passthrough metadata, never aggregated.
	Account string
	OrderID string
	Status  string
	Origin  string
}

// DefaultColumns returns the standard header names of the logistics export.
func DefaultColumns() Columns {
	return Columns{
		OrderDate:  "ORD DT",
		Revenue:    "NET",
		Pickup:     "PU COST",
		Shipping:   "SHIP COST",
		Management: "MAN COST",
		Delivery:   "DEL COST",
		Account:    "ACCT NM",
		OrderID:    "ORD#",
		Status:     "STATUS",
		Origin:     "PU CTRY",
	}
}

// Cost returns the header name for one cost category.
func (c Columns) Cost(category model.CostCategory) string {
	switch category {
	case model.CostPickup:
		return c.Pickup
	case model.CostShipping:
		return c.Shipping
	case model.CostManagement:
		return c.Management
	case model.CostDelivery:
		return c.Delivery
	default:
		return ""
	}
}
