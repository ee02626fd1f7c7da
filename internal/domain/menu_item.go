package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal" // Exact decimal money
)

// Defaults applied when the admin leaves optional menu fields blank
const (
	DefaultDescription = "No description provided"
	DefaultImageURL    = "https://via.placeholder.com/400x300?text=No+Image"
)

// CategoryOrder is the display order of the well-known menu categories
var CategoryOrder = []string{"Sandwiches", "Meals", "Drinks", "Desserts"}

// MenuItem Model
type MenuItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:100;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string          `json:"category" gorm:"size:50;not null;index"`
	ImageURL    string          `json:"image_url" gorm:"size:500"`
	IsAvailable bool            `json:"is_available" gorm:"not null;default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Normalize trims text fields and fills in the optional defaults
func (m *MenuItem) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Category = strings.TrimSpace(m.Category)
	m.Description = strings.TrimSpace(m.Description)
	m.ImageURL = strings.TrimSpace(m.ImageURL)
	if m.Description == "" {
		m.Description = DefaultDescription
	}
	if m.ImageURL == "" {
		m.ImageURL = DefaultImageURL
	}
}

// Validate checks the fields an admin must supply
func (m *MenuItem) Validate() error {
	if m.Name == "" || m.Category == "" {
		return Validationf("name and category are required")
	}
	if m.Price.IsNegative() {
		return Validationf("price must not be negative")
	}
	return nil
}

// MenuSection is one category of the public menu
type MenuSection struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

// GroupByCategory groups items into sections, well-known categories first and
// the rest in order of first appearance
func GroupByCategory(items []MenuItem) []MenuSection {
	byCategory := map[string][]MenuItem{}
	var seen []string
	for _, item := range items {
		if _, ok := byCategory[item.Category]; !ok {
			seen = append(seen, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	sections := make([]MenuSection, 0, len(byCategory))
	placed := map[string]bool{}
	for _, cat := range CategoryOrder {
		if list, ok := byCategory[cat]; ok {
			sections = append(sections, MenuSection{Category: cat, Items: list})
			placed[cat] = true
		}
	}
	for _, cat := range seen {
		if !placed[cat] {
			sections = append(sections, MenuSection{Category: cat, Items: byCategory[cat]})
		}
	}
	return sections
}
