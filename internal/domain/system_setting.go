package domain

import "github.com/shopspring/decimal" // Exact decimal money

// Keys of the operational settings table
const (
	SettingDeliveryFee      = "delivery_fee"
	SettingDeliveryIsActive = "is_delivery_active"
)

// DefaultDeliveryFee applies while no fee has been stored
var DefaultDeliveryFee = decimal.NewFromInt(20)

// SystemSetting Model, one row per key
type SystemSetting struct {
	ID    uint   `gorm:"primaryKey"`
	Key   string `gorm:"column:setting_key;size:100;uniqueIndex;not null"`
	Value string `gorm:"size:500;not null"`
}

// DeliverySettings is the current state of the delivery service
type DeliverySettings struct {
	Fee    decimal.Decimal `json:"delivery_fee"`
	Active bool            `json:"is_delivery_active"`
}
