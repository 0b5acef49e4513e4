// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/your-org/veggiekart-backend/internal/config"
)

// ErrProductNotFound is returned when no product exists for the id.
var ErrProductNotFound = errors.New("product not found")

// Service handles read-only catalog queries
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// GetProduct retrieves a product by id.
func (s *Service) GetProduct(id string) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// GetProductsByCategory retrieves products matching the category exactly.
func (s *Service) GetProductsByCategory(categoryID string) ([]Product, error) {
	var products []Product
	if err := s.db.Where("category = ?", categoryID).Order("title").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// ListCategories retrieves all categories.
func (s *Service) ListCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}
