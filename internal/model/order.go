// Package model defines the domain types for logistics order profitability.
package model

import "time"

// CostCategory identifies one of the four fixed cost components of an order.
type CostCategory string

const (
	// CostPickup is the cost of collecting the shipment.
	CostPickup CostCategory = "pickup"
	// CostShipping is the line-haul transport cost.
	CostShipping CostCategory = "shipping"
	// CostManagement is the order management overhead cost.
	CostManagement CostCategory = "management"
	// CostDelivery is the final-mile delivery cost.
	CostDelivery CostCategory = "delivery"
)

// CostCategories lists the four categories in their canonical order.
var CostCategories = []CostCategory{CostPickup, CostShipping, CostManagement, CostDelivery}

// Display returns the human-readable name for the category.
func (c CostCategory) Display() string {
	switch c {
	case CostPickup:
		return "Pickup Cost"
	case CostShipping:
		return "Shipping Cost"
	case CostManagement:
		return "Management Cost"
	case CostDelivery:
		return "Delivery Cost"
	default:
		return string(c)
	}
}

// Costs holds the four cost components of an order. A component whose source
// column is absent or blank is simply zero.
type Costs struct {
	Pickup     float64
	Shipping   float64
	Management float64
	Delivery   float64
}

// Total returns the sum of the four components.
func (c Costs) Total() float64 {
	return c.Pickup + c.Shipping + c.Management + c.Delivery
}

// Amount returns the value of a single component.
func (c Costs) Amount(category CostCategory) float64 {
	switch category {
	case CostPickup:
		return c.Pickup
	case CostShipping:
		return c.Shipping
	case CostManagement:
		return c.Management
	case CostDelivery:
		return c.Delivery
	default:
		return 0
	}
}

// Add accumulates another order's components into c.
func (c *Costs) Add(other Costs) {
	c.Pickup += other.Pickup
	c.Shipping += other.Shipping
	c.Management += other.Management
	c.Delivery += other.Delivery
}

// Order represents a single logistics order as read from the input table.
type Order struct {
	Date    time.Time
	Account string
	OrderID string
	Status  string
	Origin  string // pickup country code
	Revenue float64
	Costs   Costs
}

// EnrichedOrder is an Order augmented with derived profitability fields.
// It is immutable once computed.
type EnrichedOrder struct {
	Order
	TotalCost float64
	Profit    float64
	MarginPct float64
	Period    PeriodKey
}

// Margin computes profit as a percentage of revenue. A zero revenue yields a
// zero margin rather than a division error; small-denominator noise is not
// worth propagating as NaN or infinity.
func Margin(profit, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return profit / revenue * 100
}
