// Package events announces order activity to the rest of the restaurant:
// the kitchen listens for new orders, drivers and customers for status changes.
package events

import (
	"context"
	"time"

	"restaurant_system/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// OrderPlaced is published once an order has been committed
type OrderPlaced struct {
	OrderID    uint             `json:"order_id"`
	UserID     uint             `json:"user_id"`
	OrderType  domain.OrderType `json:"order_type"`
	ItemCount  int              `json:"item_count"`
	TotalPrice decimal.Decimal  `json:"total_price"`
	PlacedAt   time.Time        `json:"placed_at"`
}

// StatusChanged is published after a committed status transition
type StatusChanged struct {
	OrderID   uint             `json:"order_id"`
	OrderType domain.OrderType `json:"order_type"`
	From      domain.Status    `json:"from"`
	To        domain.Status    `json:"to"`
	Actor     domain.Role      `json:"actor"`
	ChangedAt time.Time        `json:"changed_at"`
}

// Publisher delivers order events. Callers treat failures as non-fatal.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, evt OrderPlaced) error
	PublishStatusChanged(ctx context.Context, evt StatusChanged) error
	Close() error
}

// LogPublisher writes events to the log; used when no broker is configured
type LogPublisher struct{}

func (LogPublisher) PublishOrderPlaced(_ context.Context, evt OrderPlaced) error {
	logrus.WithFields(logrus.Fields{
		"event":      "order.placed",
		"order_id":   evt.OrderID,
		"order_type": evt.OrderType,
		"total":      evt.TotalPrice.StringFixed(2),
	}).Info("Order placed")
	return nil
}

func (LogPublisher) PublishStatusChanged(_ context.Context, evt StatusChanged) error {
	logrus.WithFields(logrus.Fields{
		"event":    "order.status_changed",
		"order_id": evt.OrderID,
		"from":     evt.From,
		"to":       evt.To,
		"actor":    evt.Actor,
	}).Info("Order status changed")
	return nil
}

func (LogPublisher) Close() error { return nil }
