// Package service holds the restaurant's business operations. Every method
// takes a context first and returns *domain.Error kinds for caller mistakes;
// infrastructure failures are wrapped and passed through.
package service

import (
	"errors"

	"restaurant_system/internal/domain"

	"gorm.io/gorm"
)

// Pagination limits shared by the admin listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page describes one slice of a paginated listing
type Page struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// normalizePage clamps page and size to their valid ranges
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return page, size
}

func newPage(page, size int, total int64) Page {
	return Page{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: (int(total) + size - 1) / size,
	}
}

// notFound converts gorm's missing-row error into a NotFound domain error
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundf("%s not found", what)
	}
	return err
}
