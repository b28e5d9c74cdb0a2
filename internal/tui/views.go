package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/tally/internal/cli"
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	theme := m.config.Theme
	var b strings.Builder
	b.WriteString(theme.Title.Render(cli.LedgerIcon + " tally"))
	b.WriteString("\n")

	switch m.state {
	case StateMenu:
		b.WriteString(m.renderMenu())
	case StateInput:
		b.WriteString(m.renderInput())
	case StateRunning:
		b.WriteString(theme.Muted.Render("Working..."))
		b.WriteString("\n")
	case StateResult:
		b.WriteString(m.renderResult())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderMenu() string {
	theme := m.config.Theme
	var b strings.Builder

	titles := make([]string, 0, len(m.actions)+1)
	for _, a := range m.actions {
		titles = append(titles, a.title)
	}
	titles = append(titles, "Quit")

	for i, title := range titles {
		line := fmt.Sprintf("%2d. %s", i+1, title)
		if i == m.cursor {
			b.WriteString(theme.Selected.Render("> " + line))
		} else {
			b.WriteString(theme.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderInput() string {
	theme := m.config.Theme
	a := m.actions[m.current]

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(a.title))
	b.WriteString("\n\n")
	for i, v := range m.values {
		b.WriteString(theme.Muted.Render(fmt.Sprintf("%s: %s", a.fields[i].label, v)))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.inputErr != nil {
		b.WriteString(theme.StatusError.Render(cli.ErrorIcon + " " + m.inputErr.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderResult() string {
	theme := m.config.Theme
	r := m.result

	var body string
	switch {
	case r.err != nil:
		body = theme.StatusError.Render(cli.ErrorIcon + " " + r.err.Error())
	case r.notice:
		body = theme.StatusInfo.Render(r.output)
	default:
		body = theme.StatusOK.Render(strings.TrimRight(r.output, "\n"))
	}

	return theme.Box.Render(body) + "\n" + theme.Muted.Render("Press Enter to return to the menu") + "\n"
}
