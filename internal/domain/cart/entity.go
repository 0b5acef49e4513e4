// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/veggiekart-backend/internal/domain/catalog"
)

// Line pairs a resolved product with the quantity from the cart map. Lines
// are derived, never persisted: a full reload replaces all of them.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int64           `json:"quantity"`
}

// View represents the loaded cart: resolved lines plus totals.
type View struct {
	Items       []Line  `json:"items"`
	TotalAmount float64 `json:"total_amount"`
	TotalItems  int64   `json:"total_items"`
}

// ComputeTotals sums the view totals over resolved lines. Products whose
// price failed to parse contribute 0 to the amount but still count their
// quantity.
func ComputeTotals(items []Line) (totalAmount float64, totalItems int64) {
	for _, line := range items {
		totalAmount += line.Product.ActualPriceValue() * float64(line.Quantity)
		totalItems += line.Quantity
	}
	return totalAmount, totalItems
}
