package domain

import (
	"time"

	"gorm.io/datatypes" // JSON column types
	"gorm.io/gorm"      // GORM ORM library
)

// Role is the capability group a user belongs to
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleDriver   Role = "driver"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleDriver:
		return true
	}
	return false
}

// User Model
type User struct {
	ID             uint                        `json:"id" gorm:"primaryKey"`                       // Primary key
	Email          string                      `json:"email" gorm:"size:120;uniqueIndex;not null"` // Unique login e-mail
	PasswordHash   string                      `json:"-" gorm:"size:200;not null"`                 // bcrypt hash
	Name           string                      `json:"name" gorm:"size:100;not null"`              // Display name
	Phone          string                      `json:"phone" gorm:"size:20;not null"`              // Contact phone
	Role           Role                        `json:"role" gorm:"size:20;not null;default:customer"`
	Addresses      datatypes.JSONSlice[string] `json:"addresses" gorm:"not null"`    // Ordered address book, JSON array
	AddressVersion uint                        `json:"-" gorm:"not null;default:0"` // Bumped on every address write
	LoyaltyPoints  int                         `json:"loyalty_points" gorm:"not null;default:0"`
	CreatedAt      time.Time                   `json:"created_at"`
}

// BeforeSave keeps the address column an array, never null
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Addresses == nil {
		u.Addresses = datatypes.JSONSlice[string]{}
	}
	return nil
}

// AddressList returns a copy of the address book that is never nil
func (u *User) AddressList() []string {
	out := make([]string, len(u.Addresses))
	copy(out, u.Addresses)
	return out
}
