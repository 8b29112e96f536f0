package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateDashboard AppState = iota
	StateAbout
)

// main TUI application model
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	client  *AdminClient
	spinner spinner.Model
	loading bool

	counters        table.Model
	countersLoaded  bool
	about           *AboutRecord
	aboutRendered   string
	glamourRenderer *glamour.TermRenderer
}

// one counter row as returned by the admin analytics endpoint
type CounterRow struct {
	Type   string `json:"type"`
	Slug   string `json:"slug"`
	Views  int    `json:"views"`
	Clicks int    `json:"clicks"`
	Stage  string `json:"stage,omitempty"`
}

// the about section as returned by the admin content endpoint
type AboutRecord struct {
	Title            *string `json:"title"`
	ShortDescription *string `json:"shortDescription"`
	LongDescription  *string `json:"longDescription"`
	ResumeButtonText *string `json:"resumeButtonText"`
	ResumeLink       *string `json:"resumeLink"`
}

// sent when the counter listing arrives
type AnalyticsLoadedMsg struct {
	counters []CounterRow
}

// sent when the about section arrives
type AboutLoadedMsg struct {
	about *AboutRecord
}

// sent when a request fails
type ErrorMsg struct {
	err error
}
