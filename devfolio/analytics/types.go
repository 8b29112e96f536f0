package analytics

import (
	"time"

	"codeberg.org/devfolio/server/internal/hygraph"
)

// translates tracked events into durable per-(type, slug) counters at the CMS
type Service struct {
	cms *hygraph.Client
}

// the two tracked event kinds
type EventKind string

const (
	EventView  EventKind = "view"
	EventClick EventKind = "click"
)

// validates a wire-level event name
func ParseEventKind(s string) (EventKind, bool) {
	switch EventKind(s) {
	case EventView:
		return EventView, true
	case EventClick:
		return EventClick, true
	default:
		return "", false
	}
}

// one counter record per tracked (type, slug) pair
type Record struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Slug      string     `json:"slug"`
	Views     int        `json:"views"`
	Clicks    int        `json:"clicks"`
	Stage     string     `json:"stage,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
