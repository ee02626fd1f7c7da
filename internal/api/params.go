package api

import (
	"strconv" // String conversion

	"restaurant_system/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// idParam parses a positive numeric path parameter
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// pageParams reads page and page_size, ignoring invalid values
func pageParams(c *gin.Context) (int, int) {
	page := 1                           // Default page number
	pageSize := service.DefaultPageSize // Default page size
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// Check and set page size within limits
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= service.MaxPageSize {
			pageSize = v // Set page size
		}
	}
	return page, pageSize
}
