// internal/domain/catalog/entity.go
package catalog

import (
	"strconv"
	"strings"
	"time"
)

// Product represents a catalog product. The catalog is read-only to this
// service: products are only fetched by id or by category.
type Product struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"not null;index;size:64" json:"category"`
	Price       string    `gorm:"size:20" json:"price"`        // original price, decimal string
	ActualPrice string    `gorm:"size:20" json:"actual_price"` // charged price, decimal string
	Images      []string  `gorm:"type:jsonb;serializer:json" json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category represents a product category
type Category struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	ImageURL  string    `gorm:"size:500" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }

// ActualPriceValue parses the charged price; unparsable prices count as 0.
func (p *Product) ActualPriceValue() float64 {
	return parseAmount(p.ActualPrice)
}

// PriceValue parses the original (pre-discount) price.
func (p *Product) PriceValue() float64 {
	return parseAmount(p.Price)
}

// DiscountPercentage returns the rounded-down discount over the original price.
func (p *Product) DiscountPercentage() int {
	price := p.PriceValue()
	actual := p.ActualPriceValue()
	if price > 0 && actual < price {
		return int((price - actual) * 100 / price)
	}
	return 0
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
