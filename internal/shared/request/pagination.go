package request

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const DefaultPageSize = 15

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination reads page and page_size, clamping page_size to 100.
func ParsePagination(c *gin.Context) Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// UintParam parses a positive path parameter. ok is false for anything else.
func UintParam(c *gin.Context, name string) (uint, bool) {
	return parseUint(c.Param(name))
}

// UintQuery parses an optional positive query value. nil means absent or invalid.
func UintQuery(c *gin.Context, name string) *uint {
	v, ok := parseUint(c.Query(name))
	if !ok {
		return nil
	}
	return &v
}

// DateQuery parses an optional YYYY-MM-DD query value.
func DateQuery(c *gin.Context, name string) *time.Time {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil
	}
	return &t
}

// UserID returns the authenticated user id set by the auth middleware.
func UserID(c *gin.Context) (uint, bool) {
	return parseUint(c.GetString("user_id"))
}

func parseUint(raw string) (uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
