package project

import (
	"time"

	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/shared/uploads"
)

// Icons the frontend can render for a project card. Fixed symbolic names,
// not URLs.
var Icons = []interface{}{
	"heart", "book", "globe", "droplet", "health", "education", "community", "food",
}

// Project is a fundraising/impact card on the projects page. Images
// accumulate across updates; Order drives the display sort.
type Project struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Goal        string          `json:"goal"`
	Icon        string          `json:"icon"`
	Description []string        `json:"description"` // ordered paragraphs
	Gradient    string          `json:"gradient"`    // style token, e.g. "from-rose-500 to-orange-400"
	Images      []uploads.Image `json:"images"`
	IsActive    bool            `json:"isActive"`
	Order       int             `json:"order"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Stats backs GET /api/projects/stats.
type Stats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}
