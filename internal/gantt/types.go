// Package gantt computes timeline layouts for hierarchical tasks: the bounded
// window, the time buckets shown for a view mode, each task's horizontal
// placement and a parent-first display order.
package gantt

import (
	"fmt"
	"strings"
	"time"
)

// Task is a single bar on the chart.
type Task struct {
	ID       string
	ParentID string // Empty for root tasks
	Name     string
	Start    time.Time
	End      time.Time
	Color    string
}

// HasParent reports whether the task declares a parent.
func (t Task) HasParent() bool {
	return t.ParentID != ""
}

// ViewMode is the granularity of the timeline.
type ViewMode int

const (
	Days   ViewMode = iota // One unit per day (default)
	Weeks                  // One unit per ISO week
	Months                 // One unit per calendar month
)

// ViewModes returns all view modes in display order.
func ViewModes() []ViewMode {
	return []ViewMode{Days, Weeks, Months}
}

// String implements fmt.Stringer.
func (m ViewMode) String() string {
	switch m {
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	case Months:
		return "months"
	}
	return fmt.Sprintf("ViewMode(%d)", int(m))
}

// Valid reports whether m is one of the known modes.
func (m ViewMode) Valid() bool {
	return m >= Days && m <= Months
}

// Next returns the following mode, wrapping around.
func (m ViewMode) Next() ViewMode {
	return ViewMode((int(m) + 1) % len(ViewModes()))
}

// Prev returns the preceding mode, wrapping around.
func (m ViewMode) Prev() ViewMode {
	n := len(ViewModes())
	return ViewMode((int(m) + n - 1) % n)
}

// ParseViewMode parses "days", "weeks" or "months" (case-insensitive, singular
// forms accepted). An empty string yields Days.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "day", "days":
		return Days, nil
	case "week", "weeks":
		return Weeks, nil
	case "month", "months":
		return Months, nil
	}
	return Days, fmt.Errorf("%w: %q", ErrUnknownViewMode, s)
}

// TimeUnit is one column of the timeline.
type TimeUnit struct {
	Date     time.Time // Bucket anchor at local midnight
	Label    string
	SubLabel string
}

// Window is the inclusive date range walked by the unit generator.
type Window struct {
	Min time.Time
	Max time.Time
}

// Position is a task's horizontal interval as fractions of the total width.
type Position struct {
	StartIndex int
	Span       int
	Left       float64
	Width      float64
}

// Node is a task in display order.
type Node struct {
	Task
	Depth int
}

// IsSub reports whether the node is rendered nested under a parent.
func (n Node) IsSub() bool {
	return n.Depth > 0
}

// Row is a node with its computed placement. Placed is false when the task
// starts after the last unit of the timeline.
type Row struct {
	Node
	Position Position
	Placed   bool
}

// Marker is the today line. OK is false when today has no matching unit.
type Marker struct {
	Index  int
	Offset float64
	OK     bool
}

// Layout is everything a renderer needs to draw the chart.
type Layout struct {
	Mode   ViewMode
	Window Window
	Units  []TimeUnit
	Today  Marker
	Rows   []Row
	Empty  bool // No input tasks
}
