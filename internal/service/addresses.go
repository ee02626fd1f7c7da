package service

import (
	"context"
	"fmt"
	"strings"

	"restaurant_system/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Addresses manages a customer's ordered address book
type Addresses struct {
	db *gorm.DB
}

func NewAddresses(db *gorm.DB) *Addresses {
	return &Addresses{db: db}
}

// List returns the current address book
func (a *Addresses) List(ctx context.Context, userID uint) ([]string, error) {
	var user domain.User
	if err := a.db.WithContext(ctx).Select("id", "addresses").First(&user, userID).Error; err != nil {
		return nil, notFound(err, "user")
	}
	return user.AddressList(), nil
}

// Append adds a trimmed address at the end of the list
func (a *Addresses) Append(ctx context.Context, userID uint, text string) ([]string, error) {
	address := strings.TrimSpace(text)
	if address == "" {
		return nil, domain.Validationf("address must not be empty")
	}
	return a.mutate(ctx, userID, func(list []string) ([]string, error) {
		return append(list, address), nil
	})
}

// RemoveAt deletes the address at index, shifting later entries down
func (a *Addresses) RemoveAt(ctx context.Context, userID uint, index int) ([]string, error) {
	return a.mutate(ctx, userID, func(list []string) ([]string, error) {
		if index < 0 || index >= len(list) {
			return nil, domain.NotFoundf("address not found")
		}
		return append(list[:index], list[index+1:]...), nil
	})
}

// mutate rewrites the whole list, guarded by the address version read with it
func (a *Addresses) mutate(ctx context.Context, userID uint, change func([]string) ([]string, error)) ([]string, error) {
	db := a.db.WithContext(ctx)

	var user domain.User
	if err := db.Select("id", "addresses", "address_version").First(&user, userID).Error; err != nil {
		return nil, notFound(err, "user")
	}
	list, err := change(user.AddressList())
	if err != nil {
		return nil, err
	}

	res := db.Model(&domain.User{}).
		Where("id = ? AND address_version = ?", user.ID, user.AddressVersion).
		Updates(map[string]any{
			"addresses":       datatypes.JSONSlice[string](list),
			"address_version": gorm.Expr("address_version + 1"),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("save addresses: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.Conflictf("address list changed in another request, reload and retry")
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "count": len(list)}).Info("Address list updated")
	return list, nil
}
