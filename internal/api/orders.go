package api

import (
	"net/http" // HTTP status codes
	"strings"
	"time"

	"restaurant_system/internal/domain"     // Importing domain models
	"restaurant_system/internal/middleware" // Request context helpers
	"restaurant_system/internal/service"    // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// reservationLayouts are the accepted reservation time formats; the second
// is what an HTML datetime-local input submits
var reservationLayouts = []string{time.RFC3339, "2006-01-02T15:04"}

// PlaceOrderRequest represents a checkout
type PlaceOrderRequest struct {
	OrderType       domain.OrderType   `json:"order_type" binding:"required"` // Delivery, Takeaway or Dine-in
	Items           []service.CartLine `json:"items"`                         // Cart lines
	AddressIndex    *int               `json:"address_index"`                 // Saved address position
	Address         string             `json:"address"`                       // Or a typed address
	ReservationTime string             `json:"reservation_time"`              // Dine-in only
	GuestCount      *int               `json:"guest_count"`                   // Dine-in only
}

// StatusRequest asks for an order status change
type StatusRequest struct {
	Status domain.Status `json:"status" binding:"required"` // Target status
}

func parseReservation(raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	for _, layout := range reservationLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}

// PlaceOrderHandler creates an order from the customer's cart
func PlaceOrderHandler(orders *service.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		reservation, ok := parseReservation(req.ReservationTime)
		if !ok {
			badRequest(c, "Invalid reservation_time")
			return
		}
		order, err := orders.Create(c.Request.Context(), middleware.UserID(c), service.CreateOrderInput{
			OrderType:       req.OrderType,
			Items:           req.Items,
			AddressIndex:    req.AddressIndex,
			AddressText:     req.Address,
			ReservationTime: reservation,
			GuestCount:      req.GuestCount,
		})
		if err != nil {
			respondError(c, err, "place order")
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// MyOrdersHandler lists the customer's orders, newest first
func MyOrdersHandler(orders *service.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListForCustomer(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			respondError(c, err, "list my orders")
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// MyOrderHandler returns one of the customer's orders
func MyOrderHandler(orders *service.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		order, err := orders.GetForCustomer(c.Request.Context(), middleware.UserID(c), id)
		if err != nil {
			respondError(c, err, "get my order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler moves an order along the workflow as the caller's role
func UpdateOrderStatusHandler(orders *service.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req StatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		order, err := orders.TransitionStatus(c.Request.Context(), id, middleware.Role(c), req.Status)
		if err != nil {
			respondError(c, err, "update order status")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// TransitionsHandler publishes the order workflow
func TransitionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"statuses":    domain.AllStatuses,
			"transitions": domain.Transitions(),
		})
	}
}

// DriverOrdersHandler lists delivery orders ready for or out for delivery
func DriverOrdersHandler(orders *service.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListForDriver(c.Request.Context())
		if err != nil {
			respondError(c, err, "list driver orders")
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}
