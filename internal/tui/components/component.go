// Package components provides the UI building blocks of the Gantt TUI.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/gantt-tui/internal/gantt"
)

// Component is a sub-model that handles a specific part of the UI.
// Each component manages its own state, handles relevant messages,
// and renders its own view.
type Component interface {
	// Init initializes the component and returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns an updated component and command.
	Update(msg tea.Msg) (Component, tea.Cmd)

	// View renders the component to a string.
	View() string

	// SetSize updates the component's dimensions.
	SetSize(width, height int)
}

// DataReceiver is an optional interface for components that render external data.
type DataReceiver[T any] interface {
	// SetData replaces the data being rendered.
	SetData(data T)
}

var (
	_ Component                   = (*GanttModel)(nil)
	_ DataReceiver[*gantt.Layout] = (*GanttModel)(nil)
	_ Component                   = (*HelpModel)(nil)
)
