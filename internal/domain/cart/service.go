// internal/domain/cart/service.go
package cart

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/your-org/veggiekart-backend/internal/config"
	"github.com/your-org/veggiekart-backend/internal/domain/catalog"
	"github.com/your-org/veggiekart-backend/internal/domain/user"
)

// Service handles cart business logic. Every mutation locks the profile
// row, rewrites the cart map and returns the freshly loaded cart, so the
// caller always sees the store's current truth.
type Service struct {
	db      *gorm.DB
	catalog *catalog.Service
	config  *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:      db,
		catalog: catalog.NewService(db, cfg),
		config:  cfg,
	}
}

// GetCart loads the cart for a user. Entries whose product no longer exists
// are dropped from the view, not from the stored map.
func (s *Service) GetCart(uid string) (*View, error) {
	profile, err := user.LoadProfile(s.db, uid)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return &View{Items: []Line{}}, nil
		}
		return nil, err
	}

	return s.buildView(profile.CartItems)
}

// AddToCart increments the entry for the product by one, inserting it if
// absent, then returns the reloaded cart.
func (s *Service) AddToCart(uid, productID string) (*View, error) {
	if _, err := s.catalog.GetProduct(productID); err != nil {
		return nil, err
	}

	err := user.MutateProfile(s.db, uid, func(profile *user.Profile) error {
		items := profile.CartItems.Clone()
		items.Increment(productID)
		profile.CartItems = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(uid)
}

// UpdateQuantity sets the entry to exactly quantity; anything below one
// removes the line instead.
func (s *Service) UpdateQuantity(uid, productID string, quantity int64) (*View, error) {
	if quantity < 1 {
		return s.RemoveFromCart(uid, productID)
	}

	err := user.MutateProfile(s.db, uid, func(profile *user.Profile) error {
		items := profile.CartItems.Clone()
		items.SetQuantity(productID, quantity)
		profile.CartItems = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(uid)
}

// RemoveFromCart deletes the entry if present.
func (s *Service) RemoveFromCart(uid, productID string) (*View, error) {
	err := user.MutateProfile(s.db, uid, func(profile *user.Profile) error {
		items := profile.CartItems.Clone()
		items.Remove(productID)
		profile.CartItems = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(uid)
}

// ClearCart replaces the cart map with an empty one.
func (s *Service) ClearCart(uid string) (*View, error) {
	err := user.MutateProfile(s.db, uid, func(profile *user.Profile) error {
		profile.CartItems = user.CartItems{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(uid)
}

// GetCartItemCount returns the summed quantity of resolvable lines.
func (s *Service) GetCartItemCount(uid string) (int64, error) {
	view, err := s.GetCart(uid)
	if err != nil {
		return 0, err
	}
	return view.TotalItems, nil
}

// Private helper methods

func (s *Service) buildView(items user.CartItems) (*View, error) {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]Line, 0, len(items))
	for _, productID := range ids {
		product, err := s.catalog.GetProduct(productID)
		if err != nil {
			// Deleted products are dropped from the view only
			if errors.Is(err, catalog.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		lines = append(lines, Line{Product: *product, Quantity: items[productID]})
	}

	totalAmount, totalItems := ComputeTotals(lines)
	return &View{
		Items:       lines,
		TotalAmount: totalAmount,
		TotalItems:  totalItems,
	}, nil
}
