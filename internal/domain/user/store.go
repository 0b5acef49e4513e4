// internal/domain/user/store.go
package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadProfile fetches the profile record for a uid.
func LoadProfile(db *gorm.DB, uid string) (*Profile, error) {
	var profile Profile
	result := db.Where("uid = ?", uid).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to retrieve profile: %w", result.Error)
	}
	return &profile, nil
}

// MutateProfile runs fn against the locked profile row and writes the whole
// record back inside one transaction, so concurrent mutations cannot lose
// each other's updates.
func MutateProfile(db *gorm.DB, uid string, fn func(*Profile) error) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var profile Profile
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ?", uid).First(&profile)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return fmt.Errorf("failed to retrieve profile: %w", result.Error)
		}

		if err := fn(&profile); err != nil {
			return err
		}

		if err := tx.Save(&profile).Error; err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		return nil
	})
}
