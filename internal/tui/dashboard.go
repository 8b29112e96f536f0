package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
)

// builds the counter table from loaded rows
func newCountersTable(counters []CounterRow, height int) table.Model {
	columns := []table.Column{
		{Title: "Type", Width: 14},
		{Title: "Slug", Width: 32},
		{Title: "Views", Width: 8},
		{Title: "Clicks", Width: 8},
	}

	rows := make([]table.Row, 0, len(counters))
	for _, c := range counters {
		rows = append(rows, table.Row{
			c.Type,
			c.Slug,
			strconv.Itoa(c.Views),
			strconv.Itoa(c.Clicks),
		})
	}

	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = headerStyle
	styles.Selected = selectedStyle
	t.SetStyles(styles)

	return t
}

func (m *Model) dashboardView() string {
	var s string

	s += titleStyle.Render(logo)
	s += "\n" + titleStyle.Render("  Analytics") + "\n"

	if m.loading && !m.countersLoaded {
		return s + "\n  " + m.spinner.View() + " loading counters...\n"
	}

	if !m.countersLoaded {
		return s + infoStyle.Render("  no counters loaded") + "\n"
	}

	s += tableStyle.Render(m.counters.View()) + "\n"
	s += helpStyle.Render("  r: refresh | tab: about preview | q: quit")

	return s
}
