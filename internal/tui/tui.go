package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func NewApp() *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Model{
		state:   StateDashboard,
		client:  NewAdminClient(),
		spinner: s,
		loading: true,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.client.FetchAnalyticsCmd(),
		m.client.FetchAboutCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			if m.state == StateDashboard {
				m.state = StateAbout
			} else {
				m.state = StateDashboard
			}

			return m, nil

		case "r":
			m.loading = true
			m.err = nil

			return m, tea.Batch(
				m.spinner.Tick,
				m.client.FetchAnalyticsCmd(),
				m.client.FetchAboutCmd(),
			)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case AnalyticsLoadedMsg:
		m.loading = false
		m.countersLoaded = true
		m.counters = newCountersTable(msg.counters, m.height-14)

		return m, nil

	case AboutLoadedMsg:
		m.about = msg.about
		m.aboutRendered = m.renderAbout()

		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.err

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	if m.state == StateDashboard && m.countersLoaded {
		var cmd tea.Cmd
		m.counters, cmd = m.counters.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateDashboard:
		return m.dashboardView()

	case StateAbout:
		return m.aboutView()

	default:
		return "Unknown state"
	}
}

func errorView(err error) string {
	return "\n  " + errorStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n\n" +
		helpStyle.Render("  r: retry | q: quit") + "\n"
}
