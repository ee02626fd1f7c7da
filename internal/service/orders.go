package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"restaurant_system/internal/domain"
	"restaurant_system/internal/events"
	"restaurant_system/internal/metrics"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Pickup estimate: a fixed base plus a per-item preparation allowance
const (
	pickupBaseMinutes    = 20
	pickupPerItemMinutes = 2
)

// CartLine is one requested menu item
type CartLine struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

// CreateOrderInput is a checkout request. Delivery orders name a saved address
// by AddressIndex or give AddressText; dine-in orders need ReservationTime and
// GuestCount.
type CreateOrderInput struct {
	OrderType       domain.OrderType `json:"order_type"`
	Items           []CartLine       `json:"items"`
	AddressIndex    *int             `json:"address_index"`
	AddressText     string           `json:"address"`
	ReservationTime *time.Time       `json:"reservation_time"`
	GuestCount      *int             `json:"guest_count"`
}

// OrderFilter narrows the admin order listing
type OrderFilter struct {
	Status   domain.Status
	Page     int
	PageSize int
}

// OrderPage is one page of the admin order listing
type OrderPage struct {
	Orders []domain.Order `json:"orders"`
	Page
}

// Orders places orders and moves them through the workflow
type Orders struct {
	db         *gorm.DB
	publisher  events.Publisher
	now        func() time.Time
	pickupCode func() string
}

func NewOrders(db *gorm.DB, publisher events.Publisher) *Orders {
	if publisher == nil {
		publisher = events.LogPublisher{}
	}
	return &Orders{
		db:         db,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
		pickupCode: randomPickupCode,
	}
}

// randomPickupCode returns "#" followed by a number in 100..999; codes may repeat
func randomPickupCode() string {
	return fmt.Sprintf("#%d", 100+rand.Intn(900))
}

// mergeCart sums duplicate menu ids, keeping first-appearance order
func mergeCart(lines []CartLine) ([]CartLine, error) {
	if len(lines) == 0 {
		return nil, domain.Validationf("cart is empty")
	}
	merged := make([]CartLine, 0, len(lines))
	index := map[uint]int{}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, domain.Validationf("quantity must be at least 1")
		}
		if line.Quantity > domain.MaxQuantity {
			return nil, domain.Validationf("quantity must be at most %d", domain.MaxQuantity)
		}
		if i, ok := index[line.MenuItemID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.MenuItemID] = len(merged)
		merged = append(merged, line)
	}
	for _, line := range merged {
		if line.Quantity > domain.MaxQuantity {
			return nil, domain.Validationf("quantity must be at most %d", domain.MaxQuantity)
		}
	}
	return merged, nil
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// Create validates a checkout and persists the order with its item snapshot in
// one transaction
func (s *Orders) Create(ctx context.Context, userID uint, in CreateOrderInput) (*domain.Order, error) {
	if !in.OrderType.Valid() {
		return nil, domain.Validationf("invalid order type %q", in.OrderType)
	}
	lines, err := mergeCart(in.Items)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		UserID:      userID,
		OrderType:   in.OrderType,
		Status:      domain.StatusNew,
		DeliveryFee: decimal.Zero,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.First(&user, userID).Error; err != nil {
			return notFound(err, "user")
		}

		items, err := snapshotItems(tx, lines)
		if err != nil {
			return err
		}
		order.Items = items

		switch in.OrderType {
		case domain.OrderTypeDelivery:
			settings, err := readSettings(tx) // Fee and flag as of this transaction
			if err != nil {
				return err
			}
			if !settings.Active {
				return domain.ServiceUnavailablef("delivery is currently unavailable")
			}
			address, err := resolveAddress(&user, in)
			if err != nil {
				return err
			}
			order.DeliveryAddress = &address
			order.DeliveryFee = settings.Fee
		case domain.OrderTypeTakeaway:
			code := s.pickupCode()
			eta := s.now().Add(time.Duration(pickupBaseMinutes+pickupPerItemMinutes*order.ItemCount()) * time.Minute)
			order.PickupCode = &code
			order.EstimatedPickupTime = &eta
		case domain.OrderTypeDineIn:
			order.ReservationTime = in.ReservationTime
			order.GuestCount = in.GuestCount
		}

		order.ComputeTotals()
		if err := order.Validate(); err != nil {
			return err
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":   order.ID,
		"user_id":    userID,
		"order_type": order.OrderType,
		"total":      order.TotalPrice.StringFixed(2),
	}).Info("Order placed")
	metrics.RecordOrderPlaced(string(order.OrderType))
	evt := events.OrderPlaced{
		OrderID:    order.ID,
		UserID:     userID,
		OrderType:  order.OrderType,
		ItemCount:  order.ItemCount(),
		TotalPrice: order.TotalPrice,
		PlacedAt:   order.CreatedAt,
	}
	if err := s.publisher.PublishOrderPlaced(ctx, evt); err != nil {
		logrus.WithFields(logrus.Fields{"order_id": order.ID, "error": err.Error()}).Error("Failed to publish order placed event")
	}
	return &order, nil
}

// snapshotItems copies name and current price of each cart line
func snapshotItems(tx *gorm.DB, lines []CartLine) ([]domain.OrderItem, error) {
	ids := make([]uint, len(lines))
	for i, line := range lines {
		ids[i] = line.MenuItemID
	}
	var menu []domain.MenuItem
	if err := tx.Where("id IN ?", ids).Find(&menu).Error; err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}
	byID := make(map[uint]domain.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for i, line := range lines {
		m, ok := byID[line.MenuItemID]
		if !ok {
			return nil, domain.NotFoundf("menu item %d not found", line.MenuItemID)
		}
		if !m.IsAvailable {
			return nil, domain.Validationf("%s is currently unavailable", m.Name)
		}
		items = append(items, domain.OrderItem{
			Position:   i,
			MenuItemID: m.ID,
			Name:       m.Name,
			Quantity:   line.Quantity,
			UnitPrice:  m.Price,
		})
	}
	return items, nil
}

// resolveAddress picks the saved address by index, or the free text
func resolveAddress(user *domain.User, in CreateOrderInput) (string, error) {
	if in.AddressIndex != nil {
		i := *in.AddressIndex
		if i < 0 || i >= len(user.Addresses) {
			return "", domain.NotFoundf("address not found")
		}
		return user.Addresses[i], nil
	}
	address := strings.TrimSpace(in.AddressText)
	if address == "" {
		return "", domain.Validationf("address is required for delivery orders")
	}
	return address, nil
}

// TransitionStatus moves an order to a new status on behalf of actor. The
// write only succeeds if the status is still the one that was checked.
func (s *Orders) TransitionStatus(ctx context.Context, orderID uint, actor domain.Role, to domain.Status) (*domain.Order, error) {
	var order domain.Order
	var from domain.Status
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFound(err, "order")
		}
		from = order.Status
		if err := domain.CheckTransition(order.OrderType, from, to, actor); err != nil {
			return err
		}

		res := tx.Model(&domain.Order{}).
			Where("id = ? AND status = ?", orderID, from).
			Updates(map[string]any{"status": to, "updated_at": s.now()})
		if res.Error != nil {
			return fmt.Errorf("update order status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.InvalidTransitionf("order %d was updated by someone else, reload and retry", orderID)
		}

		order = domain.Order{}
		if err := tx.Preload("Items", preloadItems).First(&order, orderID).Error; err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"from":     from,
		"to":       to,
		"actor":    actor,
	}).Info("Order status updated")
	metrics.RecordStatusTransition(string(from), string(to))
	evt := events.StatusChanged{
		OrderID:   order.ID,
		OrderType: order.OrderType,
		From:      from,
		To:        to,
		Actor:     actor,
		ChangedAt: order.UpdatedAt,
	}
	if err := s.publisher.PublishStatusChanged(ctx, evt); err != nil {
		logrus.WithFields(logrus.Fields{"order_id": orderID, "error": err.Error()}).Error("Failed to publish status change event")
	}
	return &order, nil
}

// ListForCustomer returns the customer's orders, newest first
func (s *Orders) ListForCustomer(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := s.db.WithContext(ctx).Preload("Items", preloadItems).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetForCustomer returns one of the customer's own orders; other customers'
// orders are reported as missing
func (s *Orders) GetForCustomer(ctx context.Context, userID, orderID uint) (*domain.Order, error) {
	var order domain.Order
	err := s.db.WithContext(ctx).Preload("Items", preloadItems).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, notFound(err, "order")
	}
	return &order, nil
}

// ListAll returns a page of all orders for the admin dashboard
func (s *Orders) ListAll(ctx context.Context, f OrderFilter) (*OrderPage, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, domain.Validationf("unknown status %q", f.Status)
	}
	page, size := normalizePage(f.Page, f.PageSize)

	filtered := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&domain.Order{})
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		return q
	}
	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	var orders []domain.Order
	err := filtered().Preload("Customer").Preload("Items", preloadItems).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return &OrderPage{Orders: orders, Page: newPage(page, size, total)}, nil
}

// ListForDriver returns delivery orders waiting for or on their way to the customer
func (s *Orders) ListForDriver(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := s.db.WithContext(ctx).Preload("Customer").Preload("Items", preloadItems).
		Where("order_type = ? AND status IN ?", domain.OrderTypeDelivery,
			[]domain.Status{domain.StatusReady, domain.StatusOutForDelivery}).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list driver orders: %w", err)
	}
	return orders, nil
}
