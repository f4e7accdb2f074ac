package gallery

import (
	"time"

	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/shared/uploads"
)

// Gallery categories
const (
	CategoryEvents    = "events"
	CategoryPrograms  = "programs"
	CategoryCommunity = "community"
	CategoryFieldwork = "fieldwork"
	CategoryOther     = "other"
)

var Categories = []interface{}{
	CategoryEvents, CategoryPrograms, CategoryCommunity, CategoryFieldwork, CategoryOther,
}

// Item is one gallery entry. Both counters only ever move up, via relative
// writes in the repository.
type Item struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category"`
	Event        string          `json:"event,omitempty"`
	Location     string          `json:"location,omitempty"`
	Photographer string          `json:"photographer,omitempty"`
	Images       []uploads.Image `json:"images"`
	Tags         []string        `json:"tags"`
	Likes        int64           `json:"likes"`
	Views        int64           `json:"views"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Stats backs GET /api/gallery/stats.
type Stats struct {
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"byCategory"`
	TotalViews int64            `json:"totalViews"`
	TotalLikes int64            `json:"totalLikes"`
}
