package service

import (
	"context"
	"fmt"

	"restaurant_system/internal/domain"
	"restaurant_system/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MenuItemInput is the admin-editable part of a menu item
type MenuItemInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	ImageURL    string           `json:"image_url"`
	IsAvailable *bool            `json:"is_available"`
}

// apply copies the input onto item; a missing price is rejected rather than read as zero
func (in MenuItemInput) apply(item *domain.MenuItem) error {
	if in.Price == nil {
		return domain.Validationf("name, price and category are required")
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Price = *in.Price
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	return nil
}

// Menu is the catalog
type Menu struct {
	db    *gorm.DB
	cache *utils.Cache
}

func NewMenu(db *gorm.DB, cache *utils.Cache) *Menu {
	return &Menu{db: db, cache: cache}
}

// Available returns the orderable items grouped into display sections
func (m *Menu) Available(ctx context.Context) ([]domain.MenuSection, error) {
	var cached []domain.MenuSection
	if found, err := m.cache.Get(ctx, utils.CacheKeyMenu, &cached); err == nil && found {
		return cached, nil
	}

	var items []domain.MenuItem
	if err := m.db.WithContext(ctx).Where("is_available = ?", true).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	sections := domain.GroupByCategory(items)
	if err := m.cache.Set(ctx, utils.CacheKeyMenu, sections, utils.CacheTTL); err != nil {
		logrus.WithField("error", err.Error()).Warn("Failed to cache menu")
	}
	return sections, nil
}

// All returns every item, available or not
func (m *Menu) All(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := m.db.WithContext(ctx).Order("category, name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (m *Menu) Get(ctx context.Context, id uint) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := m.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err, "menu item")
	}
	return &item, nil
}

// Create adds a menu item; items are available unless the input says otherwise
func (m *Menu) Create(ctx context.Context, in MenuItemInput) (*domain.MenuItem, error) {
	item := domain.MenuItem{IsAvailable: true}
	if err := in.apply(&item); err != nil {
		return nil, err
	}
	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, err
	}
	available := item.IsAvailable
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("create menu item: %w", err)
		}
		// Create replaces a false bool with the column default
		if !available {
			item.IsAvailable = false
			return tx.Model(&item).Update("is_available", false).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.changed(ctx, "created", &item)
	return &item, nil
}

// Update replaces the editable fields of an item
func (m *Menu) Update(ctx context.Context, id uint, in MenuItemInput) (*domain.MenuItem, error) {
	item, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(item); err != nil {
		return nil, err
	}
	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := m.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	m.changed(ctx, "updated", item)
	return item, nil
}

// SetAvailability shows or hides an item on the public menu
func (m *Menu) SetAvailability(ctx context.Context, id uint, available bool) (*domain.MenuItem, error) {
	item, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.db.WithContext(ctx).Model(item).Update("is_available", available).Error; err != nil {
		return nil, fmt.Errorf("update availability: %w", err)
	}
	item.IsAvailable = available
	m.changed(ctx, "availability changed", item)
	return item, nil
}

// Delete removes an item; past orders keep their snapshot
func (m *Menu) Delete(ctx context.Context, id uint) error {
	res := m.db.WithContext(ctx).Delete(&domain.MenuItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete menu item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("menu item not found")
	}
	m.changed(ctx, "deleted", &domain.MenuItem{ID: id})
	return nil
}

func (m *Menu) changed(ctx context.Context, action string, item *domain.MenuItem) {
	m.cache.Invalidate(ctx, utils.CacheKeyMenu)
	logrus.WithFields(logrus.Fields{"menu_item_id": item.ID, "name": item.Name}).Info("Menu item " + action)
}
