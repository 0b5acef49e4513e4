// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/your-org/veggiekart-backend/internal/domain/catalog"
	"github.com/your-org/veggiekart-backend/internal/domain/user"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&user.Profile{},
		&catalog.Category{},
		&catalog.Product{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Profile indexes
		"CREATE INDEX IF NOT EXISTS idx_user_profiles_phone ON user_profiles(phone)",
		"CREATE INDEX IF NOT EXISTS idx_user_profiles_created_at ON user_profiles(created_at DESC)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_title ON products(title)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedInitialData seeds a small catalog for development
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&catalog.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("🔄 Seeding initial catalog data...")

	categories := []catalog.Category{
		{ID: "leafy-greens", Name: "Leafy Greens", ImageURL: "https://cdn.example.com/categories/leafy-greens.png"},
		{ID: "root-vegetables", Name: "Root Vegetables", ImageURL: "https://cdn.example.com/categories/root-vegetables.png"},
		{ID: "fruits", Name: "Fruits", ImageURL: "https://cdn.example.com/categories/fruits.png"},
		{ID: "herbs", Name: "Herbs", ImageURL: "https://cdn.example.com/categories/herbs.png"},
	}
	if err := m.db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	products := []catalog.Product{
		{
			ID:          "spinach-500g",
			Title:       "Spinach 500g",
			Description: "Farm fresh spinach, washed and ready to cook",
			Category:    "leafy-greens",
			Price:       "40.00",
			ActualPrice: "32.00",
			Images:      []string{"https://cdn.example.com/products/spinach-1.jpg"},
		},
		{
			ID:          "carrot-1kg",
			Title:       "Carrots 1kg",
			Description: "Crunchy orange carrots",
			Category:    "root-vegetables",
			Price:       "60.00",
			ActualPrice: "48.00",
			Images:      []string{"https://cdn.example.com/products/carrot-1.jpg"},
		},
		{
			ID:          "banana-dozen",
			Title:       "Bananas (dozen)",
			Description: "Ripe yellow bananas",
			Category:    "fruits",
			Price:       "70.00",
			ActualPrice: "55.00",
			Images:      []string{"https://cdn.example.com/products/banana-1.jpg"},
		},
		{
			ID:          "coriander-100g",
			Title:       "Coriander 100g",
			Description: "Fresh coriander bunch",
			Category:    "herbs",
			Price:       "20.00",
			ActualPrice: "15.00",
			Images:      []string{"https://cdn.example.com/products/coriander-1.jpg"},
		},
	}
	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial catalog data seeded successfully")
	return nil
}
