// Package tui provides the terminal user interface for the Gantt chart.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/gantt-tui/internal/config"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/source"
	"github.com/hy4ri/gantt-tui/internal/tui/components"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
	"go.uber.org/zap"
)

// loadTimeout bounds a single source load.
const loadTimeout = 30 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	source source.Source
	config *config.Config
	log    *zap.Logger

	// Chart state
	chart    *gantt.Chart
	loaded   bool // Tasks were loaded at least once
	notifier *Notifier

	// UI state
	loading   bool
	err       error
	statusMsg string
	width     int
	height    int
	showHelp  bool
	showHints bool

	// Components
	spinner      spinner.Model
	keymap       Keymap
	ganttComp    *components.GanttModel
	helpComp     *components.HelpModel
	helpViewport viewport.Model
}

// NewApp creates a new App instance. Chart options override the configured
// view mode and locale.
func NewApp(src source.Source, cfg *config.Config, log *zap.Logger, opts ...gantt.ChartOption) *App {
	if log == nil {
		log = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	chartOpts := append([]gantt.ChartOption{
		gantt.WithMode(cfg.ViewMode()),
		gantt.WithLocale(cfg.Locale()),
	}, opts...)

	app := &App{
		source:       src,
		config:       cfg,
		log:          log,
		chart:        gantt.NewChart(chartOpts...),
		notifier:     NewNotifier(cfg.Notify.TasksStartingToday, log),
		loading:      true,
		showHints:    cfg.UI.ShowHints,
		spinner:      s,
		keymap:       DefaultKeymap(),
		ganttComp:    components.NewGantt(cfg.UI.UnitWidth, cfg.UI.NameWidth),
		helpComp:     components.NewHelp(),
		helpViewport: viewport.New(0, 0),
	}
	app.helpViewport.Style = lipgloss.NewStyle()
	app.helpComp.SetKeymap(app.keymap.HelpItems())

	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.loadTasks(),
		tickCmd(),
	)
}

// loadTasks reads the task list from the source.
func (a *App) loadTasks() tea.Cmd {
	src := a.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		tasks, err := src.Load(ctx)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

// tickCmd wakes the app once a minute so the chart follows the date.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Chart returns the chart owned by the app.
func (a *App) Chart() *gantt.Chart {
	return a.chart
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }
type tasksLoadedMsg struct{ tasks []gantt.Task }
type tickMsg time.Time
