package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	// DefaultLimit is the page size used when the query omits one
	DefaultLimit = 20
	// MaxLimit caps the page size a client may request
	MaxLimit = 100
)

// Params is a clamped page/limit pair
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps out-of-range values to the defaults
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset of the page
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// FromQuery reads page and limit from the query string
func FromQuery(c *fiber.Ctx) Params {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))

	return Params{Page: page, Limit: limit}.Normalize()
}

// Page is the wire shape of a paginated listing: one slice of items plus the
// bookkeeping a client needs to fetch the rest.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPage builds a Page from one slice of items and the overall total
func NewPage[T any](items []T, params Params, total int64) *Page[T] {
	params = params.Normalize()

	pages := int(total) / params.Limit
	if int(total)%params.Limit > 0 {
		pages++
	}

	return &Page[T]{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: pages,
	}
}
