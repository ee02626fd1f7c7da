package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func pizzaOrder(ot OrderType, fee string) *Order {
	o := &Order{
		OrderType:   ot,
		Status:      StatusNew,
		DeliveryFee: decimal.RequireFromString(fee),
		Items: []OrderItem{
			{Position: 0, Name: "Pizza", Quantity: 2, UnitPrice: decimal.RequireFromString("12.99")},
		},
	}
	o.ComputeTotals()
	return o
}

func TestComputeTotalsDeliveryExample(t *testing.T) {
	o := pizzaOrder(OrderTypeDelivery, "20.0")
	assert.True(t, o.Subtotal.Equal(decimal.RequireFromString("25.98")), o.Subtotal.String())
	assert.True(t, o.TotalPrice.Equal(decimal.RequireFromString("45.98")), o.TotalPrice.String())
}

func TestValidateDelivery(t *testing.T) {
	o := pizzaOrder(OrderTypeDelivery, "20")
	o.DeliveryAddress = ptr("12 El-Tahrir St.")
	require.NoError(t, o.Validate())

	o.PickupCode = ptr("#123")
	assert.True(t, errors.Is(o.Validate(), ErrValidation))
}

func TestValidateDeliveryWithoutAddress(t *testing.T) {
	o := pizzaOrder(OrderTypeDelivery, "20")
	assert.True(t, errors.Is(o.Validate(), ErrValidation))
}

func TestValidateTakeaway(t *testing.T) {
	o := pizzaOrder(OrderTypeTakeaway, "0")
	o.PickupCode = ptr("#321")
	o.EstimatedPickupTime = ptr(time.Now())
	require.NoError(t, o.Validate())

	o.GuestCount = ptr(2)
	assert.True(t, errors.Is(o.Validate(), ErrValidation))
}

func TestValidateTakeawayRejectsFee(t *testing.T) {
	o := pizzaOrder(OrderTypeTakeaway, "5")
	o.PickupCode = ptr("#321")
	o.EstimatedPickupTime = ptr(time.Now())
	assert.True(t, errors.Is(o.Validate(), ErrValidation))
}

func TestValidateDineIn(t *testing.T) {
	o := pizzaOrder(OrderTypeDineIn, "0")
	o.ReservationTime = ptr(time.Date(2026, 1, 2, 19, 30, 0, 0, time.UTC))
	o.GuestCount = ptr(4)
	require.NoError(t, o.Validate())

	o.GuestCount = ptr(21)
	assert.True(t, errors.Is(o.Validate(), ErrValidation))

	o.GuestCount = nil
	assert.True(t, errors.Is(o.Validate(), ErrValidation))
}

func TestValidateEmptyCart(t *testing.T) {
	o := &Order{OrderType: OrderTypeTakeaway, PickupCode: ptr("#100"), EstimatedPickupTime: ptr(time.Now())}
	o.ComputeTotals()
	err := o.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "cart is empty")
}

func TestValidateUnknownType(t *testing.T) {
	o := pizzaOrder(OrderType("Drone"), "0")
	assert.True(t, errors.Is(o.Validate(), ErrValidation))
}

func TestItemCount(t *testing.T) {
	o := &Order{Items: []OrderItem{{Quantity: 2}, {Quantity: 3}}}
	assert.Equal(t, 5, o.ItemCount())
}
