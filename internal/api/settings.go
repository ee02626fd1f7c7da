package api

import (
	"net/http" // HTTP status codes

	"restaurant_system/internal/service" // Business operations

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal money
)

// DeliveryFeeRequest sets the delivery fee
type DeliveryFeeRequest struct {
	DeliveryFee *decimal.Decimal `json:"delivery_fee" binding:"required"`
}

// DeliveryActiveRequest switches delivery on or off
type DeliveryActiveRequest struct {
	IsDeliveryActive *bool `json:"is_delivery_active" binding:"required"`
}

// DeliverySettingsHandler returns the delivery fee and whether delivery is on
func DeliverySettingsHandler(settings *service.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := settings.Snapshot(c.Request.Context())
		if err != nil {
			respondError(c, err, "delivery settings")
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// SetDeliveryFeeHandler updates the delivery fee
func SetDeliveryFeeHandler(settings *service.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeliveryFeeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		snap, err := settings.SetDeliveryFee(c.Request.Context(), *req.DeliveryFee)
		if err != nil {
			respondError(c, err, "set delivery fee")
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// SetDeliveryActiveHandler turns delivery on or off
func SetDeliveryActiveHandler(settings *service.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeliveryActiveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		snap, err := settings.SetDeliveryActive(c.Request.Context(), *req.IsDeliveryActive)
		if err != nil {
			respondError(c, err, "set delivery active")
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// ToggleDeliveryHandler flips the delivery switch
func ToggleDeliveryHandler(settings *service.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := settings.ToggleDelivery(c.Request.Context())
		if err != nil {
			respondError(c, err, "toggle delivery")
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}
