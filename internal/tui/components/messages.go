package components

import "github.com/hy4ri/gantt-tui/internal/gantt"

// RowSelectedMsg is emitted when the chart cursor moves to another row.
type RowSelectedMsg struct {
	Row gantt.Row
}

// CloseHelpMsg is emitted when the help overlay asks to be closed.
type CloseHelpMsg struct{}
