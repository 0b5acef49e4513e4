// internal/domain/user/address_service.go
package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/your-org/veggiekart-backend/internal/config"
)

var (
	// ErrProfileNotFound is returned when no profile exists for the uid.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrAddressNotFound is returned when the address id is not in the list.
	ErrAddressNotFound = errors.New("address not found")
	// ErrNoDefaultAddress is returned when no saved address carries the
	// default flag.
	ErrNoDefaultAddress = errors.New("no address selected")
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidationError reports a rejected form field. It is caught before any
// write happens.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// AddressService handles address business logic
type AddressService struct {
	db     *gorm.DB
	config *config.Config
}

// NewAddressService creates a new address service
func NewAddressService(db *gorm.DB, cfg *config.Config) *AddressService {
	return &AddressService{
		db:     db,
		config: cfg,
	}
}

// SaveAddressRequest represents the address form data
type SaveAddressRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	House       string  `json:"house"`
	Area        string  `json:"area"`
	Landmark    string  `json:"landmark"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Pincode     string  `json:"pincode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	AddressType string  `json:"address_type"`
	IsDefault   bool    `json:"is_default"`
}

// Validate checks the form field by field; the first failure wins and no
// write happens on any failure.
func (r *SaveAddressRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return validationErrorf("please enter name")
	}
	if !phonePattern.MatchString(strings.TrimSpace(r.Phone)) {
		return validationErrorf("please enter a valid 10-digit phone number")
	}
	if strings.TrimSpace(r.House) == "" {
		return validationErrorf("please enter house/flat number")
	}
	if strings.TrimSpace(r.Area) == "" {
		return validationErrorf("please enter area/locality")
	}
	if strings.TrimSpace(r.City) == "" {
		return validationErrorf("please enter city")
	}
	if strings.TrimSpace(r.State) == "" {
		return validationErrorf("please enter state")
	}
	if !pincodePattern.MatchString(strings.TrimSpace(r.Pincode)) {
		return validationErrorf("please enter a valid 6-digit pincode")
	}
	return nil
}

// List retrieves the saved addresses in stored order.
func (s *AddressService) List(uid string) (Addresses, error) {
	profile, err := s.loadProfile(uid)
	if err != nil {
		return nil, err
	}
	return profile.Addresses, nil
}

// DefaultAddress resolves the address to show as the delivery target.
func (s *AddressService) DefaultAddress(uid string) (*Address, error) {
	profile, err := s.loadProfile(uid)
	if err != nil {
		return nil, err
	}

	addr, ok := profile.Addresses.Default()
	if !ok {
		return nil, ErrNoDefaultAddress
	}
	return &addr, nil
}

// Save creates a new address or updates an existing one (matched by id).
// A fresh id is assigned when addressID is empty. The first address saved
// to an empty list always becomes the default.
func (s *AddressService) Save(uid, addressID string, req *SaveAddressRequest) (*Address, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	addressType := strings.TrimSpace(req.AddressType)
	if addressType == "" {
		addressType = "Home"
	}

	addr := Address{
		ID:          addressID,
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		AddressLine: ComposeAddressLine(req.House, req.Area, req.Landmark),
		Landmark:    strings.TrimSpace(req.Landmark),
		City:        strings.TrimSpace(req.City),
		State:       strings.TrimSpace(req.State),
		Pincode:     strings.TrimSpace(req.Pincode),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AddressType: addressType,
	}
	if addr.ID == "" {
		addr.ID = uuid.New().String()
	}

	err := s.mutateProfile(uid, func(profile *Profile) error {
		if addressID != "" {
			if _, ok := profile.Addresses.Find(addressID); !ok {
				return ErrAddressNotFound
			}
		}
		profile.Addresses = profile.Addresses.Upsert(addr, req.IsDefault)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &addr, nil
}

// SetDefault marks the given address as the single default.
func (s *AddressService) SetDefault(uid, addressID string) (Addresses, error) {
	var updated Addresses
	err := s.mutateProfile(uid, func(profile *Profile) error {
		if _, ok := profile.Addresses.Find(addressID); !ok {
			return ErrAddressNotFound
		}
		profile.Addresses = profile.Addresses.WithDefault(addressID)
		updated = profile.Addresses
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the address, promoting the first remaining entry when the
// deleted one was the default.
func (s *AddressService) Delete(uid, addressID string) (Addresses, error) {
	var updated Addresses
	err := s.mutateProfile(uid, func(profile *Profile) error {
		if _, ok := profile.Addresses.Find(addressID); !ok {
			return ErrAddressNotFound
		}
		profile.Addresses = profile.Addresses.Remove(addressID)
		updated = profile.Addresses
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Private helper methods

func (s *AddressService) loadProfile(uid string) (*Profile, error) {
	return LoadProfile(s.db, uid)
}

func (s *AddressService) mutateProfile(uid string, fn func(*Profile) error) error {
	return MutateProfile(s.db, uid, fn)
}
