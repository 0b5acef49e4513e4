// internal/interfaces/http/handlers/address.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/veggiekart-backend/internal/config"
	"github.com/your-org/veggiekart-backend/internal/domain/user"
	"github.com/your-org/veggiekart-backend/internal/interfaces/http/middleware"
)

// AddressHandler handles saved-address endpoints
type AddressHandler struct {
	addressService *user.AddressService
	config         *config.Config
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(db *gorm.DB, cfg *config.Config) *AddressHandler {
	return &AddressHandler{
		addressService: user.NewAddressService(db, cfg),
		config:         cfg,
	}
}

// ListAddresses handles GET /addresses
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	uid, exists := middleware.GetUIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login first"})
		return
	}

	addresses, err := h.addressService.List(uid)
	if err != nil {
		h.writeError(c, err, "Error loading addresses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Addresses retrieved successfully",
		"data":    addresses,
	})
}

// GetDefaultAddress handles GET /addresses/default
func (h *AddressHandler) GetDefaultAddress(c *gin.Context) {
	uid, exists := middleware.GetUIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login first"})
		return
	}

	address, err := h.addressService.DefaultAddress(uid)
	if err != nil {
		if errors.Is(err, user.ErrNoDefaultAddress) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No address selected"})
			return
		}
		h.writeError(c, err, "Failed to retrieve default address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Default address retrieved successfully",
		"data":    address,
	})
}

// CreateAddress handles POST /addresses
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	h.saveAddress(c, "")
}

// UpdateAddress handles PUT /addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	h.saveAddress(c, c.Param("id"))
}

// SetDefaultAddress handles PUT /addresses/:id/default
func (h *AddressHandler) SetDefaultAddress(c *gin.Context) {
	uid, exists := middleware.GetUIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login first"})
		return
	}

	addresses, err := h.addressService.SetDefault(uid, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to update default address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Default address updated",
		"data":    addresses,
	})
}

// DeleteAddress handles DELETE /addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	uid, exists := middleware.GetUIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login first"})
		return
	}

	addresses, err := h.addressService.Delete(uid, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to delete address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address deleted",
		"data":    addresses,
	})
}

// Private helper methods

func (h *AddressHandler) saveAddress(c *gin.Context, addressID string) {
	uid, exists := middleware.GetUIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login first"})
		return
	}

	var req user.SaveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	address, err := h.addressService.Save(uid, addressID, &req)
	if err != nil {
		h.writeError(c, err, "Failed to save address")
		return
	}

	message := "Address saved"
	status := http.StatusCreated
	if addressID != "" {
		message = "Address updated"
		status = http.StatusOK
	}

	c.JSON(status, gin.H{
		"message": message,
		"data":    address,
	})
}

// writeError maps service errors onto toast-style responses.
func (h *AddressHandler) writeError(c *gin.Context, err error, fallback string) {
	var validationErr *user.ValidationError
	switch {
	case errors.As(err, &validationErr):
		// Validation failures carry their own field message
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, user.ErrProfileNotFound), errors.Is(err, user.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
