package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renders the about section as markdown through glamour so the editor can
// preview roughly what the site will show
func (m *Model) renderAbout() string {
	if m.about == nil {
		return infoStyle.Render("  no about section found")
	}

	var b strings.Builder

	if m.about.Title != nil && *m.about.Title != "" {
		b.WriteString("# " + *m.about.Title + "\n\n")
	}

	if m.about.ShortDescription != nil && *m.about.ShortDescription != "" {
		b.WriteString("*" + *m.about.ShortDescription + "*\n\n")
	}

	if m.about.LongDescription != nil && *m.about.LongDescription != "" {
		b.WriteString(*m.about.LongDescription + "\n\n")
	}

	if m.about.ResumeButtonText != nil && m.about.ResumeLink != nil {
		b.WriteString("[" + *m.about.ResumeButtonText + "](" + *m.about.ResumeLink + ")\n")
	}

	if m.glamourRenderer == nil {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)

		if err != nil {
			return b.String()
		}

		m.glamourRenderer = renderer
	}

	out, err := m.glamourRenderer.Render(b.String())
	if err != nil {
		return b.String()
	}

	return out
}

func (m *Model) aboutView() string {
	var s string

	s += titleStyle.Render("  About Section Preview") + "\n"

	if m.loading && m.aboutRendered == "" {
		return s + "\n  " + m.spinner.View() + " loading about section...\n"
	}

	s += m.aboutRendered + "\n"
	s += helpStyle.Render("  r: refresh | tab: analytics | q: quit")

	return s
}
