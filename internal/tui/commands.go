package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// returns a tea.Cmd that loads the counter listing
func (c *AdminClient) FetchAnalyticsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adminRequestTimeout)
		defer cancel()

		counters, err := c.FetchAnalytics(ctx)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return AnalyticsLoadedMsg{counters: counters}
	}
}

// returns a tea.Cmd that loads the about section
func (c *AdminClient) FetchAboutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adminRequestTimeout)
		defer cancel()

		about, err := c.FetchAbout(ctx)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return AboutLoadedMsg{about: about}
	}
}
