package api

import (
	"net/http" // HTTP status codes
	"strconv"

	"restaurant_system/internal/middleware" // Request context helpers
	"restaurant_system/internal/service"    // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// AddressRequest adds an address to the address book
type AddressRequest struct {
	Address string `json:"address"` // Free-text address
}

// ListAddressesHandler returns the caller's address book
func ListAddressesHandler(addresses *service.Addresses) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := addresses.List(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			respondError(c, err, "list addresses")
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": list})
	}
}

// AddAddressHandler appends an address
func AddAddressHandler(addresses *service.Addresses) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		list, err := addresses.Append(c.Request.Context(), middleware.UserID(c), req.Address)
		if err != nil {
			respondError(c, err, "add address")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Address added successfully", "addresses": list})
	}
}

// DeleteAddressHandler removes the address at the given position
func DeleteAddressHandler(addresses *service.Addresses) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index")) // Negative indexes are reported as not found
		if err != nil {
			badRequest(c, "Invalid index")
			return
		}
		list, err := addresses.RemoveAt(c.Request.Context(), middleware.UserID(c), index)
		if err != nil {
			respondError(c, err, "delete address")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully", "addresses": list})
	}
}
