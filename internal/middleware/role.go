package middleware

import (
	"net/http" // HTTP status codes

	"restaurant_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RoleRequired checks the user's role from the database on each request, so a
// demoted or deleted account loses access before its token expires
func RoleRequired(db *gorm.DB, roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID) // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch the current role from the database
		if err := db.WithContext(c.Request.Context()).Select("id", "role").First(&user, userID).Error; err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		// Check if the role is one of the allowed ones
		for _, role := range roles {
			if user.Role == role {
				c.Set(ContextRole, user.Role) // Authoritative role for the handlers
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}

// Role returns the role the request was authorized with
func Role(c *gin.Context) domain.Role {
	role, _ := c.Get(ContextRole)
	r, _ := role.(domain.Role)
	return r
}
