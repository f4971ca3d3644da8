package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"go.uber.org/zap"
)

// Notifier sends a desktop notification for each task that starts today.
// Every task id is announced at most once per run.
type Notifier struct {
	enabled  bool
	notified map[string]bool
	send     func(title, message string) error
	log      *zap.Logger
}

// NewNotifier creates a Notifier backed by beeep.
func NewNotifier(enabled bool, log *zap.Logger) *Notifier {
	return &Notifier{
		enabled:  enabled,
		notified: make(map[string]bool),
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		log: log,
	}
}

// StartingToday marks the tasks starting on now's day as notified and
// returns a command that sends their notifications.
func (n *Notifier) StartingToday(tasks []gantt.Task, now time.Time) tea.Cmd {
	if !n.enabled {
		return nil
	}

	today := gantt.StartOfDay(now)
	var cmds []tea.Cmd

	for _, task := range tasks {
		if n.notified[task.ID] {
			continue
		}
		if !gantt.StartOfDay(task.Start.In(now.Location())).Equal(today) {
			continue
		}
		n.notified[task.ID] = true

		name := task.Name
		n.log.Debug("notifying task start", zap.String("task", task.ID))
		cmds = append(cmds, func() tea.Msg {
			if err := n.send("Gantt", "Starts today: "+name); err != nil {
				n.log.Warn("failed to send notification", zap.Error(err))
			}
			return nil
		})
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
