package api

import (
	"net/http" // HTTP status codes

	"restaurant_system/internal/domain"  // Importing domain models
	"restaurant_system/internal/service" // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListOrdersHandler returns all orders for the admin dashboard, with optional
// status filtering and pagination
func ListOrdersHandler(orders *service.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c) // Pagination from query params
		result, err := orders.ListAll(c.Request.Context(), service.OrderFilter{
			Status:   domain.Status(c.Query("status")), // Optional status filter
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			respondError(c, err, "list orders")
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ListUsersHandler returns users, optionally filtered by role
func ListUsersHandler(accounts *service.Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c) // Pagination from query params
		result, err := accounts.ListUsers(c.Request.Context(), service.UserFilter{
			Role:     domain.Role(c.Query("role")), // Optional role filter
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			respondError(c, err, "list users")
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
