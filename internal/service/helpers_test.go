package service

import (
	"context"
	"sync"
	"testing"

	"restaurant_system/internal/domain"
	"restaurant_system/internal/events"
	"restaurant_system/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, role domain.Role, addresses ...string) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test",
		Phone:        "0100",
		Role:         role,
		Addresses:    datatypes.JSONSlice[string](addresses),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createMenuItem(t *testing.T, db *gorm.DB, name, price string) *domain.MenuItem {
	t.Helper()
	item := &domain.MenuItem{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Category:    "Meals",
		IsAvailable: true,
	}
	item.Normalize()
	require.NoError(t, db.Create(item).Error)
	return item
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&n).Error)
	return n
}

// recordingPublisher keeps every event it is given
type recordingPublisher struct {
	mu      sync.Mutex
	placed  []events.OrderPlaced
	changed []events.StatusChanged
	err     error
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, evt events.OrderPlaced) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.placed = append(p.placed, evt)
	return p.err
}

func (p *recordingPublisher) PublishStatusChanged(_ context.Context, evt events.StatusChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changed = append(p.changed, evt)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func ptr[T any](v T) *T { return &v }
