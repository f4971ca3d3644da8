// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#990000"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}

	// TodayColor marks the current day column
	TodayColor = lipgloss.AdaptiveColor{Light: "#D0473D", Dark: "#FF5F56"}

	statusBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
	rowBackground    = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(0, 1)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Mode bar styles
var (
	// ModeBar is the container for the view mode selector
	ModeBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Subtle).
		PaddingLeft(1).
		PaddingRight(1)

	// Mode is for inactive view mode buttons
	Mode = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle)

	// ModeActive is for the selected view mode
	ModeActive = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)
)

// Timeline header styles
var (
	// HeaderLabel is the first header line (weekday, week or month)
	HeaderLabel = lipgloss.NewStyle().
			Bold(true)

	// HeaderSubLabel is the second header line (date, range or year)
	HeaderSubLabel = lipgloss.NewStyle().
			Foreground(Subtle)

	// HeaderToday highlights the unit that contains today
	HeaderToday = lipgloss.NewStyle().
			Bold(true).
			Foreground(TodayColor)
)

// Row styles
var (
	// TaskName is the name column of a row
	TaskName = lipgloss.NewStyle()

	// TaskNameSelected is the name column of the row under the cursor
	TaskNameSelected = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight).
				Background(rowBackground)

	// SubTask is for names of tasks nested under a parent
	SubTask = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#BBBBBB"})

	// TodayMarker is the vertical line drawn through today's column
	TodayMarker = lipgloss.NewStyle().
			Foreground(TodayColor)

	// Grid is for unit separators on the track
	Grid = lipgloss.NewStyle().
		Foreground(Subtle).
		Faint(true)

	// NotPlaced marks tasks that start after the visible window
	NotPlaced = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// EmptyState is shown when there are no tasks
	EmptyState = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true).
			PaddingLeft(2)
)

// Bar returns the style for a task bar in the given hex color.
func Bar(color string) lipgloss.Style {
	if color == "" {
		return lipgloss.NewStyle().Foreground(Highlight)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(statusBackground).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(statusBackground)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(statusBackground)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(statusBackground).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(statusBackground).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// SectionHeader titles a group of key bindings
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)
)

// Spinner style
var (
	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)
)
