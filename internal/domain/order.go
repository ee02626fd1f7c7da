package domain

import (
	"time"

	"github.com/shopspring/decimal" // Exact decimal money
)

// OrderType decides which type-specific fields an order carries
type OrderType string

const (
	OrderTypeDelivery OrderType = "Delivery"
	OrderTypeTakeaway OrderType = "Takeaway"
	OrderTypeDineIn   OrderType = "Dine-in"
)

// Valid reports whether t is a known order type
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDelivery, OrderTypeTakeaway, OrderTypeDineIn:
		return true
	}
	return false
}

// Guest limits for dine-in reservations
const (
	MinGuests = 1
	MaxGuests = 20
)

// MaxQuantity caps a single cart line after duplicates are merged
const (
	MaxQuantity = 99
)

// Order Model
type Order struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	UserID              uint            `json:"user_id" gorm:"not null;index"`
	Customer            *User           `json:"customer,omitempty" gorm:"foreignKey:UserID"`
	OrderType           OrderType       `json:"order_type" gorm:"size:20;not null"`
	Status              Status          `json:"status" gorm:"size:50;not null;index"`
	Subtotal            decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	DeliveryFee         decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2);not null"`
	TotalPrice          decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	DeliveryAddress     *string         `json:"delivery_address" gorm:"size:500"`
	PickupCode          *string         `json:"pickup_code" gorm:"size:10"`
	EstimatedPickupTime *time.Time      `json:"estimated_pickup_time"`
	ReservationTime     *time.Time      `json:"reservation_time"`
	GuestCount          *int            `json:"guest_count"`
	Items               []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// OrderItem is a snapshot of one cart line taken when the order was placed
type OrderItem struct {
	ID         uint            `json:"-" gorm:"primaryKey"`
	OrderID    uint            `json:"-" gorm:"not null;index"`
	Position   int             `json:"position" gorm:"not null"`
	MenuItemID uint            `json:"menu_item_id"` // Informational only, the menu row may be gone
	Name       string          `json:"name" gorm:"size:100;not null"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
}

// LineTotal is quantity times the snapshot unit price
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemCount is the total quantity across all lines
func (o *Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// ComputeTotals fills Subtotal from the item snapshot and TotalPrice from
// Subtotal and DeliveryFee
func (o *Order) ComputeTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.Subtotal = subtotal
	o.TotalPrice = subtotal.Add(o.DeliveryFee)
}

// Validate enforces that exactly the field group of the order type is set
func (o *Order) Validate() error {
	if !o.OrderType.Valid() {
		return Validationf("invalid order type %q", o.OrderType)
	}
	if len(o.Items) == 0 {
		return Validationf("cart is empty")
	}
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return Validationf("quantity for %q must be at least 1", item.Name)
		}
		if item.UnitPrice.IsNegative() {
			return Validationf("price for %q must not be negative", item.Name)
		}
	}
	if o.OrderType != OrderTypeDelivery && !o.DeliveryFee.IsZero() {
		return Validationf("delivery fee only applies to delivery orders")
	}
	if !o.TotalPrice.Equal(o.Subtotal.Add(o.DeliveryFee)) {
		return Validationf("total does not match subtotal plus delivery fee")
	}

	hasDelivery := o.DeliveryAddress != nil
	hasPickup := o.PickupCode != nil || o.EstimatedPickupTime != nil
	hasDineIn := o.ReservationTime != nil || o.GuestCount != nil

	switch o.OrderType {
	case OrderTypeDelivery:
		if !hasDelivery || *o.DeliveryAddress == "" {
			return Validationf("address is required for delivery orders")
		}
		if hasPickup || hasDineIn {
			return Validationf("delivery orders cannot carry pickup or reservation fields")
		}
	case OrderTypeTakeaway:
		if o.PickupCode == nil || o.EstimatedPickupTime == nil {
			return Validationf("takeaway orders need a pickup code and pickup time")
		}
		if hasDelivery || hasDineIn {
			return Validationf("takeaway orders cannot carry delivery or reservation fields")
		}
	case OrderTypeDineIn:
		if o.ReservationTime == nil || o.ReservationTime.IsZero() {
			return Validationf("reservation date and time are required for dine-in orders")
		}
		if o.GuestCount == nil {
			return Validationf("number of guests is required for dine-in orders")
		}
		if *o.GuestCount < MinGuests || *o.GuestCount > MaxGuests {
			return Validationf("number of guests must be between %d and %d", MinGuests, MaxGuests)
		}
		if hasDelivery || hasPickup {
			return Validationf("dine-in orders cannot carry delivery or pickup fields")
		}
	}
	return nil
}
