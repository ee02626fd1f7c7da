package service

import (
	"context"
	"fmt"
	"strconv"

	"restaurant_system/internal/domain"
	"restaurant_system/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Settings reads and writes the operational delivery settings
type Settings struct {
	db    *gorm.DB
	cache *utils.Cache
}

func NewSettings(db *gorm.DB, cache *utils.Cache) *Settings {
	return &Settings{db: db, cache: cache}
}

// readSettings loads both delivery settings through tx, falling back to the
// defaults for missing or unparsable values
func readSettings(tx *gorm.DB) (domain.DeliverySettings, error) {
	out := domain.DeliverySettings{Fee: domain.DefaultDeliveryFee, Active: true}

	var rows []domain.SystemSetting
	err := tx.Where("setting_key IN ?", []string{domain.SettingDeliveryFee, domain.SettingDeliveryIsActive}).
		Find(&rows).Error
	if err != nil {
		return out, fmt.Errorf("read settings: %w", err)
	}
	for _, row := range rows {
		switch row.Key {
		case domain.SettingDeliveryFee:
			fee, err := decimal.NewFromString(row.Value)
			if err != nil || fee.IsNegative() {
				logrus.WithField("value", row.Value).Warn("Stored delivery fee is invalid, using default")
				continue
			}
			out.Fee = fee
		case domain.SettingDeliveryIsActive:
			active, err := strconv.ParseBool(row.Value)
			if err != nil {
				logrus.WithField("value", row.Value).Warn("Stored delivery flag is invalid, using default")
				continue
			}
			out.Active = active
		}
	}
	return out, nil
}

// writeSetting upserts one key
func writeSetting(tx *gorm.DB, key, value string) error {
	row := domain.SystemSetting{Key: key, Value: value}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	return nil
}

// Snapshot returns both settings, served from cache when possible
func (s *Settings) Snapshot(ctx context.Context) (domain.DeliverySettings, error) {
	var cached domain.DeliverySettings
	if found, err := s.cache.Get(ctx, utils.CacheKeyDeliverySettings, &cached); err == nil && found {
		return cached, nil
	}
	current, err := readSettings(s.db.WithContext(ctx))
	if err != nil {
		return current, err
	}
	if err := s.cache.Set(ctx, utils.CacheKeyDeliverySettings, current, utils.CacheTTL); err != nil {
		logrus.WithField("error", err.Error()).Warn("Failed to cache delivery settings")
	}
	return current, nil
}

// DeliveryFee is the flat fee added to delivery orders
func (s *Settings) DeliveryFee(ctx context.Context) (decimal.Decimal, error) {
	snap, err := s.Snapshot(ctx)
	return snap.Fee, err
}

// DeliveryActive reports whether delivery orders are accepted
func (s *Settings) DeliveryActive(ctx context.Context) (bool, error) {
	snap, err := s.Snapshot(ctx)
	return snap.Active, err
}

// SetDeliveryFee stores a new fee; negative fees are rejected
func (s *Settings) SetDeliveryFee(ctx context.Context, fee decimal.Decimal) (domain.DeliverySettings, error) {
	if fee.IsNegative() {
		return domain.DeliverySettings{}, domain.Validationf("delivery fee must not be negative")
	}
	return s.update(ctx, func(tx *gorm.DB, _ domain.DeliverySettings) error {
		return writeSetting(tx, domain.SettingDeliveryFee, fee.StringFixed(2))
	})
}

// SetDeliveryActive switches delivery on or off
func (s *Settings) SetDeliveryActive(ctx context.Context, active bool) (domain.DeliverySettings, error) {
	return s.update(ctx, func(tx *gorm.DB, _ domain.DeliverySettings) error {
		return writeSetting(tx, domain.SettingDeliveryIsActive, strconv.FormatBool(active))
	})
}

// ToggleDelivery flips the delivery flag
func (s *Settings) ToggleDelivery(ctx context.Context) (domain.DeliverySettings, error) {
	return s.update(ctx, func(tx *gorm.DB, current domain.DeliverySettings) error {
		return writeSetting(tx, domain.SettingDeliveryIsActive, strconv.FormatBool(!current.Active))
	})
}

func (s *Settings) update(ctx context.Context, write func(tx *gorm.DB, current domain.DeliverySettings) error) (domain.DeliverySettings, error) {
	var result domain.DeliverySettings
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := readSettings(tx)
		if err != nil {
			return err
		}
		if err := write(tx, current); err != nil {
			return err
		}
		result, err = readSettings(tx)
		return err
	})
	if err != nil {
		return domain.DeliverySettings{}, err
	}
	s.cache.Invalidate(ctx, utils.CacheKeyDeliverySettings)
	logrus.WithFields(logrus.Fields{
		"delivery_fee": result.Fee.StringFixed(2),
		"active":       result.Active,
	}).Info("Delivery settings updated")
	return result, nil
}
