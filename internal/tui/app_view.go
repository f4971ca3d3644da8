package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var content string
	switch {
	case a.showHelp:
		content = a.helpViewport.View()
	case !a.loaded && a.loading:
		content = a.spinner.View() + " Loading tasks from " + a.source.Name() + "..."
	case !a.loaded && a.err != nil:
		content = styles.StatusBarError.Render("Could not load tasks: " + a.err.Error())
	default:
		content = a.ganttComp.View()
	}

	body := styles.App.
		Width(a.width).
		Height(a.height - 1).
		MaxHeight(a.height - 1).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatusBar())
}

// renderStatusBar renders the bottom line: the current message on the left
// and key hints on the right.
func (a *App) renderStatusBar() string {
	var left string
	switch {
	case a.err != nil:
		left = styles.StatusBarError.Render("Error: " + a.err.Error())
	case a.loading && a.loaded:
		left = styles.StatusBarText.Render(a.spinner.View() + " " + a.statusMsg)
	case a.statusMsg != "":
		left = styles.StatusBarSuccess.Render(a.statusMsg)
	}

	var right string
	if a.showHints {
		hints := []struct{ key, desc string }{
			{"d/w/m", "view"},
			{"h/l", "scroll"},
			{a.keymap.Today.Key, "today"},
			{a.keymap.Copy.Key, "copy"},
			{a.keymap.Help.Key, "help"},
			{a.keymap.Quit.Key, "quit"},
		}
		parts := make([]string, 0, len(hints))
		for _, h := range hints {
			parts = append(parts, styles.StatusBarKey.Render(h.key)+styles.StatusBarText.Render(" "+h.desc))
		}
		right = strings.Join(parts, styles.StatusBarText.Render(" • "))
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Not enough room for both; the message wins
		return styles.StatusBar.Width(a.width).MaxHeight(1).Render(left)
	}

	return styles.StatusBar.Width(a.width).Render(left + styles.StatusBarText.Render(strings.Repeat(" ", gap)) + right)
}
