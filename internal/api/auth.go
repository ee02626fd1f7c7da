package api

import (
	"net/http" // HTTP status codes

	"restaurant_system/internal/domain"     // Importing domain models
	"restaurant_system/internal/middleware" // Request context helpers
	"restaurant_system/internal/service"    // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`     // Display name
	Email    string `json:"email" binding:"required"`    // Login e-mail
	Password string `json:"password" binding:"required"` // Plain password, hashed before storage
	Phone    string `json:"phone" binding:"required"`    // Contact phone
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string       `json:"token"` // JWT token
	User  *domain.User `json:"user"`  // Logged-in user
}

// RegisterHandler creates a customer account
func RegisterHandler(accounts *service.Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			badRequest(c, "Invalid request")
			return
		}
		user, err := accounts.Register(c.Request.Context(), service.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
		})
		if err != nil {
			respondError(c, err, "register")
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully", "user": user})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(accounts *service.Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			badRequest(c, "Invalid request")
			return
		}
		token, user, err := accounts.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if statusFor(err) == http.StatusForbidden {
				// Wrong e-mail or password
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			respondError(c, err, "login")
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
	}
}

// ProfileHandler returns the logged-in user
func ProfileHandler(accounts *service.Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.Profile(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			respondError(c, err, "profile")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
