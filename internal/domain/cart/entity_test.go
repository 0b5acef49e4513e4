// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/veggiekart-backend/internal/domain/catalog"
)

func TestComputeTotals(t *testing.T) {
	items := []Line{
		{Product: catalog.Product{ID: "tomato", ActualPrice: "25.50"}, Quantity: 2},
		{Product: catalog.Product{ID: "onion", ActualPrice: "18"}, Quantity: 3},
	}

	amount, count := ComputeTotals(items)

	assert.InDelta(t, 105.0, amount, 0.001)
	assert.Equal(t, int64(5), count)
}

func TestComputeTotalsEmpty(t *testing.T) {
	amount, count := ComputeTotals(nil)

	assert.Zero(t, amount)
	assert.Zero(t, count)
}

func TestComputeTotalsUnparsablePrice(t *testing.T) {
	// A bad price contributes 0 to the amount but the quantity still counts
	items := []Line{
		{Product: catalog.Product{ID: "tomato", ActualPrice: "25.50"}, Quantity: 1},
		{Product: catalog.Product{ID: "mystery", ActualPrice: "free"}, Quantity: 4},
	}

	amount, count := ComputeTotals(items)

	assert.InDelta(t, 25.50, amount, 0.001)
	assert.Equal(t, int64(5), count)
}
