package store

import (
	"errors"
	"fmt"
	"os"

	"restaurant_system/internal/domain" // Importing domain models

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm" // GORM ORM library
)

// SeedData is the layout of the seed YAML file
type SeedData struct {
	Users    []SeedUser        `yaml:"users"`
	Menu     []SeedMenuItem    `yaml:"menu"`
	Settings map[string]string `yaml:"settings"`
}

// SeedUser is an account created at install time
type SeedUser struct {
	Email     string   `yaml:"email"`
	Password  string   `yaml:"password"`
	Name      string   `yaml:"name"`
	Phone     string   `yaml:"phone"`
	Role      string   `yaml:"role"`
	Addresses []string `yaml:"addresses"`
}

// SeedMenuItem is a starter menu entry; price is a decimal string
type SeedMenuItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Category    string `yaml:"category"`
	ImageURL    string `yaml:"image_url"`
}

// LoadSeed reads and parses a seed file
func LoadSeed(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// Seed inserts missing users and settings, and the starter menu when the menu
// table is empty. Running it twice changes nothing.
func Seed(db *gorm.DB, data *SeedData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, su := range data.Users {
			if err := seedUser(tx, su); err != nil {
				return err
			}
		}

		var menuCount int64
		if err := tx.Model(&domain.MenuItem{}).Count(&menuCount).Error; err != nil {
			return fmt.Errorf("count menu items: %w", err)
		}
		if menuCount == 0 {
			for _, sm := range data.Menu {
				price, err := decimal.NewFromString(sm.Price)
				if err != nil {
					return fmt.Errorf("menu item %q: bad price %q: %w", sm.Name, sm.Price, err)
				}
				item := domain.MenuItem{
					Name:        sm.Name,
					Description: sm.Description,
					Price:       price,
					Category:    sm.Category,
					ImageURL:    sm.ImageURL,
					IsAvailable: true,
				}
				item.Normalize()
				if err := item.Validate(); err != nil {
					return fmt.Errorf("menu item %q: %w", sm.Name, err)
				}
				if err := tx.Create(&item).Error; err != nil {
					return fmt.Errorf("create menu item %q: %w", sm.Name, err)
				}
			}
		}

		for key, value := range data.Settings {
			setting := domain.SystemSetting{Key: key, Value: value}
			err := tx.Where("setting_key = ?", key).FirstOrCreate(&setting).Error
			if err != nil {
				return fmt.Errorf("seed setting %q: %w", key, err)
			}
		}

		logrus.WithFields(logrus.Fields{
			"users":    len(data.Users),
			"menu":     len(data.Menu),
			"settings": len(data.Settings),
		}).Info("Seed completed")
		return nil
	})
}

func seedUser(tx *gorm.DB, su SeedUser) error {
	var existing domain.User
	err := tx.Where("email = ?", su.Email).First(&existing).Error
	if err == nil {
		return nil // Already present
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up %q: %w", su.Email, err)
	}

	role := domain.Role(su.Role)
	if !role.Valid() {
		return fmt.Errorf("seed user %q: unknown role %q", su.Email, su.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password for %q: %w", su.Email, err)
	}
	user := domain.User{
		Email:        su.Email,
		PasswordHash: string(hash),
		Name:         su.Name,
		Phone:        su.Phone,
		Role:         role,
		Addresses:    datatypes.JSONSlice[string](su.Addresses),
	}
	if err := tx.Create(&user).Error; err != nil {
		return fmt.Errorf("create user %q: %w", su.Email, err)
	}
	return nil
}
