package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/tui/components"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		_, cmd := a.ganttComp.Update(msg)
		return a, cmd

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		// Status bar takes the last line; App style pads one cell on each side
		bodyWidth := msg.Width - 2
		bodyHeight := msg.Height - 1
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		a.ganttComp.SetSize(bodyWidth, bodyHeight)
		a.helpComp.SetSize(bodyWidth, bodyHeight)
		a.helpViewport.Width = bodyWidth
		a.helpViewport.Height = bodyHeight
		a.helpViewport.SetContent(a.helpComp.View())

		if a.loaded {
			a.ganttComp.ScrollToDate(a.chart.Now())
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case errMsg:
		a.loading = false
		a.err = msg.err
		a.log.Error("command failed", zap.String("source", a.source.Name()), zap.Error(msg.err))
		return a, nil

	case statusMsg:
		a.statusMsg = msg.msg
		return a, nil

	case tasksLoadedMsg:
		a.loading = false
		a.err = nil
		a.chart.SetTasks(msg.tasks)
		a.log.Info("tasks loaded", zap.String("source", a.source.Name()), zap.Int("count", len(msg.tasks)))

		first := !a.loaded
		a.loaded = true
		a.refreshLayout()
		if first {
			a.ganttComp.ScrollToDate(a.chart.Now())
		}
		a.statusMsg = fmt.Sprintf("%d tasks from %s", len(msg.tasks), a.source.Name())

		return a, a.notifier.StartingToday(msg.tasks, a.chart.Now())

	case tickMsg:
		if a.loaded {
			a.refreshLayout()
			return a, tea.Batch(tickCmd(), a.notifier.StartingToday(a.chart.Tasks(), a.chart.Now()))
		}
		return a, tickCmd()

	case components.RowSelectedMsg:
		a.statusMsg = describeRow(msg.Row)
		return a, nil

	case components.CloseHelpMsg:
		a.showHelp = false
		return a, nil
	}

	return a, nil
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.showHelp {
		switch msg.String() {
		case "j", "k", "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			a.helpViewport, cmd = a.helpViewport.Update(msg)
			return a, cmd
		}
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}

	action, ok := a.keymap.HandleKey(msg)
	if !ok {
		_, cmd := a.ganttComp.Update(msg)
		return a, cmd
	}

	switch action {
	case "quit":
		return a, tea.Quit
	case "help":
		a.showHelp = true
		a.helpViewport.SetContent(a.helpComp.View())
		a.helpViewport.GotoTop()
	case "refresh":
		if a.loading {
			return a, nil
		}
		a.loading = true
		a.statusMsg = "Refreshing..."
		return a, tea.Batch(a.spinner.Tick, a.loadTasks())
	case "copy":
		return a, a.copySelected()
	case "today":
		a.refreshLayout()
		a.ganttComp.ScrollToDate(a.chart.Now())
	case "days":
		a.setMode(gantt.Days)
	case "weeks":
		a.setMode(gantt.Weeks)
	case "months":
		a.setMode(gantt.Months)
	case "next_mode":
		a.setMode(a.chart.Mode().Next())
	case "prev_mode":
		a.setMode(a.chart.Mode().Prev())
	}

	return a, nil
}

// setMode switches the chart's view mode and recenters on today.
func (a *App) setMode(mode gantt.ViewMode) {
	if mode == a.chart.Mode() {
		return
	}
	a.chart.SetMode(mode)
	a.log.Debug("view mode changed", zap.Stringer("mode", mode))
	if !a.loaded {
		return
	}
	a.refreshLayout()
	a.ganttComp.ScrollToDate(a.chart.Now())
}

// refreshLayout hands the chart's current layout to the chart component.
func (a *App) refreshLayout() {
	layout, err := a.chart.Layout()
	if err != nil {
		a.err = err
		a.log.Error("failed to lay out chart", zap.Error(err))
		return
	}
	a.ganttComp.SetData(layout)
}

// copySelected copies the selected task's name and dates to the clipboard.
func (a *App) copySelected() tea.Cmd {
	row, ok := a.ganttComp.Selected()
	if !ok {
		return nil
	}

	text := fmt.Sprintf("%s\t%s\t%s", row.Name, row.Start.Format(time.DateOnly), row.End.Format(time.DateOnly))
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return errMsg{fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return statusMsg{"Copied " + row.Name}
	}
}

// describeRow summarizes a row for the status bar.
func describeRow(row gantt.Row) string {
	s := fmt.Sprintf("%s  %s → %s", row.Name, row.Start.Format("02 Jan 2006"), row.End.Format("02 Jan 2006"))
	if !row.Placed {
		s += "  (starts after the timeline)"
	}
	return s
}
