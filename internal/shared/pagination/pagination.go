package pagination

import (
	"strconv"
	"strings"

	"nonprofit-cms-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Params is the shared list-endpoint contract: page >= 1, limit >= 1,
// sort field plus direction.
type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// FromQuery parses ?page&limit&sortBy&sortOrder with per-resource defaults.
// Out-of-range values snap back to the defaults rather than erroring.
func FromQuery(c *gin.Context, defaultLimit int, defaultSort string) Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	sortOrder := strings.ToLower(c.DefaultQuery("sortOrder", "desc"))
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	return Params{
		Page:      page,
		Limit:     limit,
		SortBy:    c.DefaultQuery("sortBy", defaultSort),
		SortOrder: sortOrder,
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause maps the requested sort field through an allow-list; unknown
// fields fall back to the default column. Never interpolate user input into
// ORDER BY without this.
func (p Params) OrderClause(allowed map[string]string, defaultColumn string) string {
	column, ok := allowed[p.SortBy]
	if !ok {
		column = defaultColumn
	}
	direction := "DESC"
	if p.SortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

// Envelope computes pages = ceil(total/limit) plus the has-next/prev flags.
func (p Params) Envelope(total int64) *response.Pagination {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return &response.Pagination{
		Current: p.Page,
		Pages:   pages,
		Total:   total,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
	}
}
