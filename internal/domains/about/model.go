package about

import (
	"time"

	"github.com/google/uuid"
)

// Hero is the top banner of the about page.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
}

// HistorySection is one block of the organization's history narrative.
type HistorySection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// TimelineEntry is one milestone on the timeline.
type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CTA is the closing call-to-action block.
type CTA struct {
	Text        string `json:"text"`
	ButtonLabel string `json:"buttonLabel"`
	ButtonURL   string `json:"buttonUrl"`
}

// Document is one version of the about page. Many versions coexist; at most
// one is active at a time, and the public site renders the active one.
type Document struct {
	ID            uuid.UUID        `json:"id"`
	Hero          Hero             `json:"hero"`
	Vision        string           `json:"vision"`
	Mission       string           `json:"mission"`
	Objectives    []string         `json:"objectives"`
	History       []HistorySection `json:"history"`
	Timeline      []TimelineEntry  `json:"timeline"`
	CTA           CTA              `json:"cta"`
	Version       string           `json:"version"`
	IsActive      bool             `json:"isActive"`
	LastUpdatedBy *uuid.UUID       `json:"lastUpdatedBy,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// Stats backs GET /api/about/admin/stats.
type Stats struct {
	Total         int64      `json:"total"`
	Active        int64      `json:"active"`
	LatestVersion string     `json:"latestVersion"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt,omitempty"`
}
