// internal/domain/catalog/entity_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductPriceValues(t *testing.T) {
	p := &Product{Price: "40.00", ActualPrice: "32.50"}

	assert.InDelta(t, 40.0, p.PriceValue(), 0.001)
	assert.InDelta(t, 32.5, p.ActualPriceValue(), 0.001)
}

func TestProductPriceValueUnparsable(t *testing.T) {
	p := &Product{Price: "", ActualPrice: "n/a"}

	assert.Zero(t, p.PriceValue())
	assert.Zero(t, p.ActualPriceValue())
}

func TestProductDiscountPercentage(t *testing.T) {
	tests := []struct {
		name   string
		price  string
		actual string
		want   int
	}{
		{name: "quarter off", price: "40", actual: "30", want: 25},
		{name: "rounds down", price: "30", actual: "20", want: 33},
		{name: "no discount", price: "30", actual: "30", want: 0},
		{name: "actual above price", price: "30", actual: "35", want: 0},
		{name: "zero price", price: "0", actual: "10", want: 0},
		{name: "unparsable price", price: "abc", actual: "10", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Price: tt.price, ActualPrice: tt.actual}
			assert.Equal(t, tt.want, p.DiscountPercentage())
		})
	}
}
