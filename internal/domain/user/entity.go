// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"
)

// Profile represents the per-user record: contact info, the cart map and
// the saved address list. Cart and addresses are stored as JSONB documents
// so the whole field is replaced on every mutation.
type Profile struct {
	UID       string    `gorm:"primaryKey;size:64" json:"uid"`
	Phone     string    `gorm:"uniqueIndex;not null;size:20" json:"phone"`
	Name      string    `gorm:"size:100" json:"name"`
	CartItems CartItems `gorm:"type:jsonb;serializer:json;not null;default:'{}'" json:"cart_items"`
	Addresses Addresses `gorm:"type:jsonb;serializer:json;not null;default:'[]'" json:"addresses"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Profile) TableName() string {
	return "user_profiles"
}

// HasCompletedProfile reports whether the user has set a display name.
func (p *Profile) HasCompletedProfile() bool {
	return strings.TrimSpace(p.Name) != ""
}

// CartItems maps product id to quantity.
type CartItems map[string]int64

// Increment adds one unit of the product, inserting the entry if absent.
func (m CartItems) Increment(productID string) {
	m[productID] = m[productID] + 1
}

// SetQuantity sets the entry to exactly quantity; below 1 removes it.
func (m CartItems) SetQuantity(productID string, quantity int64) {
	if quantity < 1 {
		delete(m, productID)
		return
	}
	m[productID] = quantity
}

// Remove deletes the entry if present.
func (m CartItems) Remove(productID string) {
	delete(m, productID)
}

// Quantity returns the stored quantity for the product, 0 when absent.
func (m CartItems) Quantity(productID string) int64 {
	return m[productID]
}

// Contains reports whether the product has an entry.
func (m CartItems) Contains(productID string) bool {
	_, ok := m[productID]
	return ok
}

// Clone returns a copy safe to mutate.
func (m CartItems) Clone() CartItems {
	out := make(CartItems, len(m))
	for id, qty := range m {
		out[id] = qty
	}
	return out
}

// Address represents one saved delivery address.
type Address struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	AddressLine string  `json:"address_line"`
	Landmark    string  `json:"landmark"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Pincode     string  `json:"pincode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	AddressType string  `json:"address_type"` // Home, Work, Other
	IsDefault   bool    `json:"is_default"`
}

// Addresses is an ordered address list. At most one entry has IsDefault set;
// every mutator below preserves that invariant.
type Addresses []Address

// Find returns the address with the given id.
func (a Addresses) Find(id string) (Address, bool) {
	for _, addr := range a {
		if addr.ID == id {
			return addr, true
		}
	}
	return Address{}, false
}

// Default returns the first address flagged as default. A list where no
// entry carries the flag (partial prior failure) reports false rather than
// guessing.
func (a Addresses) Default() (Address, bool) {
	for _, addr := range a {
		if addr.IsDefault {
			return addr, true
		}
	}
	return Address{}, false
}

// WithDefault returns a new list where every default flag is recomputed as
// (id == target). The result has exactly one default when the id exists.
func (a Addresses) WithDefault(id string) Addresses {
	out := make(Addresses, len(a))
	for i, addr := range a {
		addr.IsDefault = addr.ID == id
		out[i] = addr
	}
	return out
}

// Upsert inserts the address, replacing any existing entry with the same id.
// The new entry becomes default when asked for, or when the list was empty;
// in that case all other flags are cleared first.
func (a Addresses) Upsert(addr Address, makeDefault bool) Addresses {
	out := make(Addresses, 0, len(a)+1)
	for _, existing := range a {
		if existing.ID == addr.ID {
			continue
		}
		out = append(out, existing)
	}

	addr.IsDefault = makeDefault || len(out) == 0
	if addr.IsDefault {
		for i := range out {
			out[i].IsDefault = false
		}
	}

	return append(out, addr)
}

// Remove deletes the address with the given id. If the removed entry was the
// default and others remain, the first remaining entry is promoted.
func (a Addresses) Remove(id string) Addresses {
	out := make(Addresses, 0, len(a))
	removedDefault := false
	for _, addr := range a {
		if addr.ID == id {
			removedDefault = addr.IsDefault
			continue
		}
		out = append(out, addr)
	}

	if removedDefault && len(out) > 0 {
		out[0].IsDefault = true
	}

	return out
}

// ComposeAddressLine builds the stored address line from its parts:
// "house, area, Near landmark".
func ComposeAddressLine(house, area, landmark string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(house))
	if s := strings.TrimSpace(area); s != "" {
		b.WriteString(", ")
		b.WriteString(s)
	}
	if s := strings.TrimSpace(landmark); s != "" {
		b.WriteString(", Near ")
		b.WriteString(s)
	}
	return b.String()
}
