package api

import (
	"net/http" // HTTP status codes

	"restaurant_system/internal/service" // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// AvailabilityRequest shows or hides a menu item
type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// PublicMenuHandler returns the orderable menu grouped by category
func PublicMenuHandler(menu *service.Menu) gin.HandlerFunc {
	return func(c *gin.Context) {
		sections, err := menu.Available(c.Request.Context())
		if err != nil {
			respondError(c, err, "public menu")
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu": sections})
	}
}

// AdminMenuHandler returns every menu item, including hidden ones
func AdminMenuHandler(menu *service.Menu) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := menu.All(c.Request.Context())
		if err != nil {
			respondError(c, err, "admin menu")
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// CreateMenuItemHandler adds a menu item
func CreateMenuItemHandler(menu *service.Menu) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.MenuItemInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		item, err := menu.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "create menu item")
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateMenuItemHandler replaces a menu item's fields
func UpdateMenuItemHandler(menu *service.Menu) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req service.MenuItemInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		item, err := menu.Update(c.Request.Context(), id, req)
		if err != nil {
			respondError(c, err, "update menu item")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// SetAvailabilityHandler toggles whether customers can order an item
func SetAvailabilityHandler(menu *service.Menu) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req AvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		item, err := menu.SetAvailability(c.Request.Context(), id, *req.IsAvailable)
		if err != nil {
			respondError(c, err, "set availability")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DeleteMenuItemHandler removes a menu item
func DeleteMenuItemHandler(menu *service.Menu) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		if err := menu.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "delete menu item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}
