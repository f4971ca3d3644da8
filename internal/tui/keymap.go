package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Rows
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Timeline
	Left      Key
	Right     Key
	PageLeft  Key
	PageRight Key
	Today     Key

	// View modes
	Days     Key
	Weeks    Key
	Months   Key
	NextMode Key
	PrevMode Key

	// Actions
	Copy    Key
	Refresh Key
	Help    Key
	Quit    Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "first task"},
		Bottom: Key{Key: "G", Help: "last task"},

		Left:      Key{Key: "h", Help: "earlier"},
		Right:     Key{Key: "l", Help: "later"},
		PageLeft:  Key{Key: "H", Help: "page earlier"},
		PageRight: Key{Key: "L", Help: "page later"},
		Today:     Key{Key: "t", Help: "jump to today"},

		Days:     Key{Key: "d", Help: "days"},
		Weeks:    Key{Key: "w", Help: "weeks"},
		Months:   Key{Key: "m", Help: "months"},
		NextMode: Key{Key: "tab", Help: "next view"},
		PrevMode: Key{Key: "shift+tab", Help: "previous view"},

		Copy:    Key{Key: "y", Help: "copy task"},
		Refresh: Key{Key: "r", Help: "refresh"},
		Help:    Key{Key: "?", Help: "help"},
		Quit:    Key{Key: "q", Help: "quit"},
	}
}

// HandleKey maps a key press to an application action. Keys that move the
// cursor or the timeline are not consumed; the chart component handles them.
func (k Keymap) HandleKey(msg tea.KeyMsg) (string, bool) {
	switch msg.String() {
	case k.Quit.Key, "ctrl+c":
		return "quit", true
	case k.Help.Key:
		return "help", true
	case k.Refresh.Key:
		return "refresh", true
	case k.Copy.Key:
		return "copy", true
	case k.Today.Key:
		return "today", true
	case k.Days.Key:
		return "days", true
	case k.Weeks.Key:
		return "weeks", true
	case k.Months.Key:
		return "months", true
	case k.NextMode.Key:
		return "next_mode", true
	case k.PrevMode.Key:
		return "prev_mode", true
	}

	return "", false
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Tasks", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{k.Top.Key + "/" + k.Bottom.Key, "First/last task"},
		{"ctrl+u/ctrl+d", "Half page up/down"},
		{k.Copy.Key, "Copy task name and dates"},
		{"", ""},
		{"Timeline", ""},
		{k.Left.Key + "/" + k.Right.Key, "Scroll one unit"},
		{k.PageLeft.Key + "/" + k.PageRight.Key, "Scroll one page"},
		{k.Today.Key, "Jump to today"},
		{"", ""},
		{"View", ""},
		{k.Days.Key, "Days"},
		{k.Weeks.Key, "Weeks"},
		{k.Months.Key, "Months"},
		{k.NextMode.Key + "/" + k.PrevMode.Key, "Cycle views"},
		{"", ""},
		{"General", ""},
		{k.Refresh.Key, "Reload tasks"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
	}
}
