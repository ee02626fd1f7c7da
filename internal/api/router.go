package api

import (
	"net/http" // HTTP status codes

	"restaurant_system/internal/domain"     // Importing domain models
	"restaurant_system/internal/metrics"    // Prometheus collectors
	"restaurant_system/internal/middleware" // Auth and request logging
	"restaurant_system/internal/service"    // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Deps are the collaborators the HTTP layer is built from
type Deps struct {
	DB        *gorm.DB
	Accounts  *service.Accounts
	Orders    *service.Orders
	Addresses *service.Addresses
	Menu      *service.Menu
	Settings  *service.Settings
	JWTSecret string
}

// NewRouter registers every route on a new gin engine
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := d.DB.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	apiGroup := r.Group("/api")

	// Public routes
	apiGroup.POST("/auth/register", RegisterHandler(d.Accounts)) // Registration endpoint
	apiGroup.POST("/auth/login", LoginHandler(d.Accounts))       // Login endpoint
	apiGroup.GET("/menu", PublicMenuHandler(d.Menu))
	apiGroup.GET("/settings/delivery", DeliverySettingsHandler(d.Settings))
	apiGroup.GET("/orders/transitions", TransitionsHandler())

	// Any logged-in user
	authGroup := apiGroup.Group("")
	authGroup.Use(middleware.JWTAuthMiddleware(d.JWTSecret))
	authGroup.GET("/profile", ProfileHandler(d.Accounts))

	// Customer routes
	customerGroup := apiGroup.Group("")
	customerGroup.Use(middleware.JWTAuthMiddleware(d.JWTSecret), middleware.RoleRequired(d.DB, domain.RoleCustomer))
	customerGroup.GET("/addresses", ListAddressesHandler(d.Addresses))
	customerGroup.POST("/addresses", AddAddressHandler(d.Addresses))
	customerGroup.DELETE("/addresses/:index", DeleteAddressHandler(d.Addresses))
	customerGroup.POST("/orders", PlaceOrderHandler(d.Orders))
	customerGroup.GET("/orders", MyOrdersHandler(d.Orders))
	customerGroup.GET("/orders/:id", MyOrderHandler(d.Orders))

	// Admin routes
	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(d.JWTSecret), middleware.RoleRequired(d.DB, domain.RoleAdmin))
	adminGroup.GET("/orders", ListOrdersHandler(d.Orders))
	adminGroup.PUT("/orders/:id/status", UpdateOrderStatusHandler(d.Orders))
	adminGroup.GET("/users", ListUsersHandler(d.Accounts))
	adminGroup.GET("/menu", AdminMenuHandler(d.Menu))
	adminGroup.POST("/menu", CreateMenuItemHandler(d.Menu))
	adminGroup.PUT("/menu/:id", UpdateMenuItemHandler(d.Menu))
	adminGroup.DELETE("/menu/:id", DeleteMenuItemHandler(d.Menu))
	adminGroup.PUT("/menu/:id/availability", SetAvailabilityHandler(d.Menu))
	adminGroup.PUT("/settings/delivery-fee", SetDeliveryFeeHandler(d.Settings))
	adminGroup.PUT("/settings/delivery-active", SetDeliveryActiveHandler(d.Settings))
	adminGroup.POST("/settings/toggle-delivery", ToggleDeliveryHandler(d.Settings))

	// Driver routes
	driverGroup := apiGroup.Group("/driver")
	driverGroup.Use(middleware.JWTAuthMiddleware(d.JWTSecret), middleware.RoleRequired(d.DB, domain.RoleDriver))
	driverGroup.GET("/orders", DriverOrdersHandler(d.Orders))
	driverGroup.PUT("/orders/:id/status", UpdateOrderStatusHandler(d.Orders))

	return r
}
