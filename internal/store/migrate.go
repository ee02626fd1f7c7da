package store

import (
	"fmt"

	"restaurant_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Models lists every table owned by the service, in dependency order
var Models = []any{
	&domain.User{},
	&domain.MenuItem{},
	&domain.Order{},
	&domain.OrderItem{},
	&domain.SystemSetting{},
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
