package content

import (
	"time"

	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/shared/uploads"
)

// Content statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// Subtopic is an ordered body section under a topic.
type Subtopic struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Order int    `json:"order"`
}

// Creator is the populated author reference. Optional: anonymous admin
// tooling may create content without a session.
type Creator struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// Content is an editorial page: a topic with ordered subtopics, attached
// images and a slug derived once at creation (immutable afterwards).
type Content struct {
	ID        uuid.UUID       `json:"id"`
	Topic     string          `json:"topic"`
	Subtopics []Subtopic      `json:"subtopics"`
	Images    []uploads.Image `json:"images"`
	CreatorID *uuid.UUID      `json:"-"`
	Creator   *Creator        `json:"creator,omitempty"`
	Status    string          `json:"status"`
	Slug      string          `json:"slug"`
	Tags      []string        `json:"tags"`
	Views     int64           `json:"views"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Stats backs GET /api/content/stats.
type Stats struct {
	Total      int64 `json:"total"`
	Draft      int64 `json:"draft"`
	Published  int64 `json:"published"`
	Archived   int64 `json:"archived"`
	TotalViews int64 `json:"totalViews"`
}
