// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/your-org/veggiekart-backend/internal/config"
	"github.com/your-org/veggiekart-backend/internal/interfaces/http/handlers"
	"github.com/your-org/veggiekart-backend/internal/interfaces/http/middleware"
)

// SetupRoutes wires all API v1 route groups
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	SetupAuthRoutes(rg, db, redisClient, cfg)
	SetupProfileRoutes(rg, db, redisClient, cfg)
	SetupAddressRoutes(rg, db, cfg)
	SetupCartRoutes(rg, db, cfg)
	SetupCatalogRoutes(rg, db, cfg)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, redisClient, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/otp/send", authHandler.SendOTP)
		auth.POST("/otp/verify", authHandler.VerifyOTP)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
		}
	}
}

// SetupProfileRoutes sets up profile related routes
func SetupProfileRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	profileHandler := handlers.NewProfileHandler(db, redisClient, cfg)

	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware(cfg)) // All profile routes require authentication
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
	}
}

// SetupAddressRoutes sets up saved-address routes
func SetupAddressRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	addressHandler := handlers.NewAddressHandler(db, cfg)

	addresses := rg.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware(cfg)) // All address routes require authentication
	{
		addresses.GET("", addressHandler.ListAddresses)
		addresses.GET("/default", addressHandler.GetDefaultAddress)
		addresses.POST("", addressHandler.CreateAddress)
		addresses.PUT("/:id", addressHandler.UpdateAddress)
		addresses.PUT("/:id/default", addressHandler.SetDefaultAddress)
		addresses.DELETE("/:id", addressHandler.DeleteAddress)
	}
}

// SetupCartRoutes sets up shopping cart routes
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware(cfg)) // All cart routes require authentication
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCatalogRoutes sets up product catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)

	catalog := rg.Group("/catalog")
	catalog.Use(middleware.OptionalAuthMiddleware(cfg)) // Browsing works without login
	{
		catalog.GET("/categories", catalogHandler.ListCategories)
		catalog.GET("/categories/:id/products", catalogHandler.GetCategoryProducts)
		catalog.GET("/products/:id", catalogHandler.GetProduct)
	}
}
