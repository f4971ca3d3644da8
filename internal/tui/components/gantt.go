package components

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/tui/styles"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// maxUnitWidth caps how far a unit column grows to fit its labels.
	maxUnitWidth = 16

	barCell   = "█"
	todayCell = "│"
	moreCell  = "»"
)

// modeKeys are the keys shown next to each mode in the mode bar.
var modeKeys = map[gantt.ViewMode]string{
	gantt.Days:   "d",
	gantt.Weeks:  "w",
	gantt.Months: "m",
}

// GanttModel renders a chart layout: the mode bar, a two-line timeline
// header and one row per task. The track scrolls horizontally by unit and the
// rows scroll vertically with the cursor.
type GanttModel struct {
	layout        *gantt.Layout
	width, height int
	unitWidth     int
	nameWidth     int

	cursor int // Selected row
	offset int // First visible row
	scroll int // First visible unit
}

// NewGantt creates a GanttModel. unitWidth is the minimum number of cells per
// time unit, nameWidth the width of the task name column.
func NewGantt(unitWidth, nameWidth int) *GanttModel {
	if unitWidth < 1 {
		unitWidth = 1
	}
	if nameWidth < 4 {
		nameWidth = 4
	}
	return &GanttModel{
		unitWidth: unitWidth,
		nameWidth: nameWidth,
	}
}

// Init implements Component.
func (g *GanttModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (g *GanttModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return g.handleKeyMsg(msg)
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return g, g.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			return g, g.moveCursor(1)
		}
	}
	return g, nil
}

func (g *GanttModel) handleKeyMsg(msg tea.KeyMsg) (Component, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		return g, g.moveCursor(1)
	case "k", "up":
		return g, g.moveCursor(-1)
	case "g", "home":
		return g, g.moveCursor(-g.cursor)
	case "G", "end":
		return g, g.moveCursor(len(g.rows()) - 1 - g.cursor)
	case "ctrl+d":
		return g, g.moveCursor(g.bodyHeight() / 2)
	case "ctrl+u":
		return g, g.moveCursor(-g.bodyHeight() / 2)
	case "h", "left":
		g.ScrollBy(-1)
	case "l", "right":
		g.ScrollBy(1)
	case "H":
		g.ScrollBy(-g.VisibleUnits())
	case "L":
		g.ScrollBy(g.VisibleUnits())
	}
	return g, nil
}

// moveCursor moves the cursor by delta rows and reports the new selection.
func (g *GanttModel) moveCursor(delta int) tea.Cmd {
	rows := g.rows()
	if len(rows) == 0 {
		return nil
	}

	prev := g.cursor
	g.cursor = clamp(g.cursor+delta, 0, len(rows)-1)
	g.ensureVisible()

	if g.cursor == prev {
		return nil
	}
	row := rows[g.cursor]
	return func() tea.Msg {
		return RowSelectedMsg{Row: row}
	}
}

// SetData implements DataReceiver. The cursor stays on the same task when it
// is still in the layout.
func (g *GanttModel) SetData(layout *gantt.Layout) {
	var selectedID string
	if row, ok := g.Selected(); ok {
		selectedID = row.ID
	}

	g.layout = layout
	g.cursor = 0
	for i, row := range g.rows() {
		if row.ID == selectedID {
			g.cursor = i
			break
		}
	}
	g.ensureVisible()
	g.ScrollBy(0)
}

// Layout returns the layout being displayed.
func (g *GanttModel) Layout() *gantt.Layout {
	return g.layout
}

// Selected returns the row under the cursor.
func (g *GanttModel) Selected() (gantt.Row, bool) {
	rows := g.rows()
	if g.cursor < 0 || g.cursor >= len(rows) {
		return gantt.Row{}, false
	}
	return rows[g.cursor], true
}

// Cursor returns the selected row index.
func (g *GanttModel) Cursor() int {
	return g.cursor
}

// Scroll returns the index of the first visible unit.
func (g *GanttModel) Scroll() int {
	return g.scroll
}

// ScrollBy moves the track by delta units, clamped to the unit range.
func (g *GanttModel) ScrollBy(delta int) {
	g.scroll = clamp(g.scroll+delta, 0, g.maxScroll())
}

// ScrollToDate scrolls so that the unit containing t sits in the first third
// of the track.
func (g *GanttModel) ScrollToDate(t time.Time) {
	units := g.units()
	if len(units) == 0 {
		g.scroll = 0
		return
	}

	day := gantt.StartOfDay(t.In(units[0].Date.Location()))
	idx := 0
	for i, u := range units {
		if u.Date.After(day) {
			break
		}
		idx = i
	}

	g.scroll = clamp(idx-g.VisibleUnits()/3, 0, g.maxScroll())
}

// SetSize implements Component.
func (g *GanttModel) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
	g.ScrollBy(0)
}

// VisibleUnits returns how many units fit on the track.
func (g *GanttModel) VisibleUnits() int {
	track := g.width - g.nameWidth - 1
	n := track / g.cellWidth()
	if n < 1 {
		return 1
	}
	return n
}

// View implements Component.
func (g *GanttModel) View() string {
	var b strings.Builder
	b.WriteString(g.modeBar())
	b.WriteString("\n")

	if g.layout == nil {
		return b.String()
	}

	label, sub := g.header()
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(sub)

	if g.layout.Empty {
		b.WriteString("\n\n")
		b.WriteString(styles.EmptyState.Render("No tasks yet."))
		return b.String()
	}

	rows := g.rows()
	end := g.offset + g.bodyHeight()
	if end > len(rows) {
		end = len(rows)
	}
	for i := g.offset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(g.renderRow(rows[i], i == g.cursor))
	}

	return b.String()
}

func (g *GanttModel) modeBar() string {
	current := gantt.Days
	if g.layout != nil {
		current = g.layout.Mode
	}

	title := cases.Title(language.English)
	var buttons []string
	for _, mode := range gantt.ViewModes() {
		text := "[" + modeKeys[mode] + "] " + title.String(mode.String())
		if mode == current {
			buttons = append(buttons, styles.ModeActive.Render(text))
		} else {
			buttons = append(buttons, styles.Mode.Render(text))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	if g.width > 0 {
		return styles.ModeBar.Width(g.width).Render(bar)
	}
	return styles.ModeBar.Render(bar)
}

// header renders the label and subLabel lines of the visible units.
func (g *GanttModel) header() (string, string) {
	units := g.units()
	cw := g.cellWidth()

	var label, sub strings.Builder
	label.WriteString(styles.Subtitle.Render(fit("Task", g.nameWidth)))
	label.WriteString(styles.Grid.Render(todayCell))
	sub.WriteString(fit("", g.nameWidth))
	sub.WriteString(styles.Grid.Render(todayCell))

	first, last := g.visibleRange()
	for i := first; i < last; i++ {
		labelStyle, subStyle := styles.HeaderLabel, styles.HeaderSubLabel
		if g.layout.Today.OK && g.layout.Today.Index == i {
			labelStyle, subStyle = styles.HeaderToday, styles.HeaderToday
		}
		label.WriteString(labelStyle.Render(fit(units[i].Label, cw)))
		sub.WriteString(subStyle.Render(fit(units[i].SubLabel, cw)))
	}

	return label.String(), sub.String()
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellBar
	cellToday
	cellMore
)

func (g *GanttModel) renderRow(row gantt.Row, selected bool) string {
	name := row.Name
	if name == "" {
		name = row.ID
	}
	if row.IsSub() {
		name = strings.Repeat("  ", row.Depth-1) + "└ " + name
	}

	nameStyle := styles.TaskName
	switch {
	case selected:
		nameStyle = styles.TaskNameSelected
	case row.IsSub():
		nameStyle = styles.SubTask
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(fit(name, g.nameWidth)))
	b.WriteString(styles.Grid.Render(todayCell))

	kinds := g.trackCells(row)
	barStyle := styles.Bar(row.Color)
	for start := 0; start < len(kinds); {
		end := start
		for end < len(kinds) && kinds[end] == kinds[start] {
			end++
		}
		n := end - start
		switch kinds[start] {
		case cellBar:
			b.WriteString(barStyle.Render(strings.Repeat(barCell, n)))
		case cellToday:
			b.WriteString(styles.TodayMarker.Render(strings.Repeat(todayCell, n)))
		case cellMore:
			b.WriteString(styles.NotPlaced.Render(strings.Repeat(moreCell, n)))
		default:
			b.WriteString(strings.Repeat(" ", n))
		}
		start = end
	}

	return b.String()
}

// trackCells classifies every visible track cell of a row. Bars are placed
// from the row's Left and Width fractions of the full track.
func (g *GanttModel) trackCells(row gantt.Row) []cellKind {
	cw := g.cellWidth()
	total := len(g.units()) * cw
	first, last := g.visibleRange()
	from, to := first*cw, last*cw

	barStart, barEnd := -1, -1
	if row.Placed {
		barStart = int(math.Round(row.Position.Left * float64(total)))
		barEnd = int(math.Round((row.Position.Left + row.Position.Width) * float64(total)))
		if barEnd <= barStart {
			barEnd = barStart + 1
		}
	}

	today := -1
	if g.layout.Today.OK {
		today = int(math.Round(g.layout.Today.Offset*float64(total))) + cw/2
	}

	kinds := make([]cellKind, to-from)
	for c := from; c < to; c++ {
		switch {
		case c >= barStart && c < barEnd:
			kinds[c-from] = cellBar
		case c == today:
			kinds[c-from] = cellToday
		}
	}
	if !row.Placed && len(kinds) > 0 {
		kinds[len(kinds)-1] = cellMore
	}

	return kinds
}

func (g *GanttModel) rows() []gantt.Row {
	if g.layout == nil {
		return nil
	}
	return g.layout.Rows
}

func (g *GanttModel) units() []gantt.TimeUnit {
	if g.layout == nil {
		return nil
	}
	return g.layout.Units
}

// cellWidth is the number of cells per unit: at least unitWidth, widened to
// fit the longest label up to maxUnitWidth.
func (g *GanttModel) cellWidth() int {
	w := g.unitWidth
	for _, u := range g.units() {
		for _, s := range []string{u.Label, u.SubLabel} {
			if lw := runewidth.StringWidth(s) + 1; lw > w {
				w = lw
			}
		}
	}
	if w > maxUnitWidth {
		w = max(maxUnitWidth, g.unitWidth)
	}
	return w
}

func (g *GanttModel) visibleRange() (int, int) {
	n := len(g.units())
	first := clamp(g.scroll, 0, n)
	last := first + g.VisibleUnits()
	if last > n {
		last = n
	}
	return first, last
}

func (g *GanttModel) maxScroll() int {
	m := len(g.units()) - g.VisibleUnits()
	if m < 0 {
		return 0
	}
	return m
}

// bodyHeight is the number of task rows that fit below the mode bar and the
// timeline header.
func (g *GanttModel) bodyHeight() int {
	h := g.height - 4
	if h < 1 {
		return 1
	}
	return h
}

func (g *GanttModel) ensureVisible() {
	h := g.bodyHeight()
	if g.cursor < g.offset {
		g.offset = g.cursor
	}
	if g.cursor >= g.offset+h {
		g.offset = g.cursor - h + 1
	}
	if limit := len(g.rows()) - h; g.offset > limit {
		g.offset = limit
	}
	if g.offset < 0 {
		g.offset = 0
	}
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
