package program

import (
	"time"

	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/shared/uploads"
)

// Program statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Program is a long-running initiative presented on the programs page.
// The slug is re-derived whenever the title changes; it carries no
// uniqueness suffix, so two programs with colliding titles surface a
// validation error instead of silently diverging.
type Program struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ProgramType string          `json:"programType"`
	Images      []uploads.Image `json:"images"`
	Features    []string        `json:"features"`
	Status      string          `json:"status"`
	Slug        string          `json:"slug"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Stats backs GET /api/programs/stats.
type Stats struct {
	Total    int64            `json:"total"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
	ByType   map[string]int64 `json:"byType"`
}
