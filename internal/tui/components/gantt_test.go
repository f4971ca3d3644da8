package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/gantt-tui/internal/gantt"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testLayout(t *testing.T, mode gantt.ViewMode) *gantt.Layout {
	t.Helper()
	tasks := []gantt.Task{
		{ID: "a", Name: "Design", Start: day(2024, 1, 1), End: day(2024, 1, 5), Color: "#3b82f6"},
		{ID: "b", ParentID: "a", Name: "Wireframes", Start: day(2024, 1, 2), End: day(2024, 1, 3)},
		{ID: "c", Name: "Build", Start: day(2024, 1, 8), End: day(2024, 1, 12)},
	}
	layout, err := gantt.Build(tasks, mode, gantt.Options{Now: day(2024, 1, 10).Add(15 * time.Hour)})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return layout
}

// newTestGantt returns a model wide enough to show every unit of the layout.
func newTestGantt(t *testing.T, layout *gantt.Layout) *GanttModel {
	t.Helper()
	g := NewGantt(6, 20)
	g.SetData(layout)
	g.SetSize(20+1+len(layout.Units)*g.cellWidth(), 30)
	return g
}

func TestGanttModel_View(t *testing.T) {
	g := newTestGantt(t, testLayout(t, gantt.Days))
	view := g.View()

	for _, want := range []string{"[d] Days", "[w] Weeks", "[m] Months", "Task", "Design", "└ Wireframes", "Build", barCell, "Wed", "10/1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestGanttModel_EmptyState(t *testing.T) {
	layout, err := gantt.Build(nil, gantt.Days, gantt.Options{Now: day(2024, 1, 10)})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	g := newTestGantt(t, layout)

	view := g.View()
	if !strings.Contains(view, "No tasks yet.") {
		t.Errorf("expected empty state, got:\n%s", view)
	}
	if _, ok := g.Selected(); ok {
		t.Error("expected no selection in an empty chart")
	}
}

func TestGanttModel_TrackCells(t *testing.T) {
	layout := testLayout(t, gantt.Days)
	g := newTestGantt(t, layout)
	cw := g.cellWidth()

	row := layout.Rows[0]
	kinds := g.trackCells(row)
	if len(kinds) != len(layout.Units)*cw {
		t.Fatalf("expected %d cells, got %d", len(layout.Units)*cw, len(kinds))
	}

	barStart := row.Position.StartIndex * cw
	barEnd := (row.Position.StartIndex + row.Position.Span) * cw
	for c, kind := range kinds {
		inBar := c >= barStart && c < barEnd
		if inBar != (kind == cellBar) {
			t.Fatalf("cell %d: kind %d, expected bar=%v", c, kind, inBar)
		}
	}

	if !layout.Today.OK {
		t.Fatal("expected today marker in Days mode")
	}
	today := layout.Today.Index*cw + cw/2
	if kinds[today] != cellToday {
		t.Errorf("expected today marker at cell %d, got %d", today, kinds[today])
	}
}

func TestGanttModel_NotPlacedRow(t *testing.T) {
	layout := testLayout(t, gantt.Days)
	layout.Rows[2].Placed = false
	g := newTestGantt(t, layout)

	kinds := g.trackCells(layout.Rows[2])
	if kinds[len(kinds)-1] != cellMore {
		t.Errorf("expected %q marker on the last cell", moreCell)
	}
	for _, k := range kinds {
		if k == cellBar {
			t.Fatal("not placed row must not draw a bar")
		}
	}
	if !strings.Contains(g.View(), moreCell) {
		t.Error("view should show the not placed marker")
	}
}

func TestGanttModel_CursorMovement(t *testing.T) {
	g := newTestGantt(t, testLayout(t, gantt.Days))

	tests := []struct {
		key    tea.KeyMsg
		want   int
		wantID string
	}{
		{keyMsg("j"), 1, "b"},
		{tea.KeyMsg{Type: tea.KeyDown}, 2, "c"},
		{keyMsg("j"), 2, ""}, // Already at the last row
		{keyMsg("g"), 0, "a"},
		{keyMsg("G"), 2, "c"},
		{keyMsg("k"), 1, "b"},
	}

	for i, tt := range tests {
		_, cmd := g.Update(tt.key)
		if g.Cursor() != tt.want {
			t.Fatalf("step %d: cursor = %d, want %d", i, g.Cursor(), tt.want)
		}
		if tt.wantID == "" {
			if cmd != nil {
				t.Errorf("step %d: expected no command", i)
			}
			continue
		}
		if cmd == nil {
			t.Fatalf("step %d: expected a selection command", i)
		}
		msg, ok := cmd().(RowSelectedMsg)
		if !ok || msg.Row.ID != tt.wantID {
			t.Errorf("step %d: got %+v, want row %s", i, msg, tt.wantID)
		}
	}
}

func TestGanttModel_HorizontalScroll(t *testing.T) {
	layout := testLayout(t, gantt.Days)
	g := NewGantt(6, 20)
	g.SetData(layout)
	g.SetSize(20+1+5*g.cellWidth(), 20)

	if g.VisibleUnits() != 5 {
		t.Fatalf("expected 5 visible units, got %d", g.VisibleUnits())
	}

	g.Update(keyMsg("h"))
	if g.Scroll() != 0 {
		t.Errorf("scroll should clamp at 0, got %d", g.Scroll())
	}

	g.Update(keyMsg("l"))
	if g.Scroll() != 1 {
		t.Errorf("expected scroll 1, got %d", g.Scroll())
	}

	g.Update(keyMsg("L"))
	if g.Scroll() != 6 {
		t.Errorf("expected scroll 6, got %d", g.Scroll())
	}

	for i := 0; i < 10; i++ {
		g.Update(keyMsg("L"))
	}
	if want := len(layout.Units) - 5; g.Scroll() != want {
		t.Errorf("scroll should clamp at %d, got %d", want, g.Scroll())
	}

	g.Update(keyMsg("H"))
	if want := len(layout.Units) - 10; g.Scroll() != want {
		t.Errorf("expected scroll %d, got %d", want, g.Scroll())
	}
}

func TestGanttModel_ScrollToDate(t *testing.T) {
	layout := testLayout(t, gantt.Days)
	g := NewGantt(6, 20)
	g.SetData(layout)
	g.SetSize(20+1+6*g.cellWidth(), 20)

	g.ScrollToDate(day(2024, 1, 10).Add(9 * time.Hour))
	want := layout.Today.Index - g.VisibleUnits()/3
	if g.Scroll() != want {
		t.Errorf("expected scroll %d, got %d", want, g.Scroll())
	}

	g.ScrollToDate(day(2020, 1, 1))
	if g.Scroll() != 0 {
		t.Errorf("dates before the window should scroll to 0, got %d", g.Scroll())
	}
}

func TestGanttModel_SetDataKeepsSelection(t *testing.T) {
	g := newTestGantt(t, testLayout(t, gantt.Days))
	g.Update(keyMsg("G"))

	g.SetData(testLayout(t, gantt.Weeks))
	row, ok := g.Selected()
	if !ok || row.ID != "c" {
		t.Errorf("expected selection to stay on c, got %+v", row)
	}
	if !strings.Contains(g.View(), "Week") {
		t.Error("expected week labels after switching layouts")
	}
}

func TestGanttModel_RowsScrollWithCursor(t *testing.T) {
	var tasks []gantt.Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, gantt.Task{ID: string(rune('a' + i)), Name: "task", Start: day(2024, 1, 1), End: day(2024, 1, 2)})
	}
	layout, err := gantt.Build(tasks, gantt.Days, gantt.Options{Now: day(2024, 1, 1)})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	g := NewGantt(6, 20)
	g.SetData(layout)
	g.SetSize(100, 9) // 5 task rows

	g.Update(keyMsg("G"))
	if g.offset != 15 {
		t.Errorf("expected offset 15, got %d", g.offset)
	}
	g.Update(keyMsg("g"))
	if g.offset != 0 {
		t.Errorf("expected offset 0, got %d", g.offset)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"日本語", 4, "日… "},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := fit(tt.in, tt.width); got != tt.want {
			t.Errorf("fit(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestHelpModel(t *testing.T) {
	h := NewHelp()
	h.SetSize(100, 30)

	if !strings.Contains(h.View(), "No keybindings registered") {
		t.Error("expected placeholder without a keymap")
	}

	h.SetKeymap([][]string{
		{"Chart", ""},
		{"j/k", "Move up/down"},
		{"General", ""},
		{"q", "Quit"},
	})
	view := h.View()
	for _, want := range []string{"Keyboard Shortcuts", "Chart", "Move up/down", "General", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected close command")
	}
	if _, ok := cmd().(CloseHelpMsg); !ok {
		t.Error("expected CloseHelpMsg")
	}
}

func BenchmarkGanttModel_View(b *testing.B) {
	var tasks []gantt.Task
	for i := 0; i < 200; i++ {
		start := day(2024, 1, 1).AddDate(0, 0, i%60)
		tasks = append(tasks, gantt.Task{ID: string(rune(0x4e00 + i)), Name: "task", Start: start, End: start.AddDate(0, 0, 7)})
	}
	layout, err := gantt.Build(tasks, gantt.Days, gantt.Options{Now: day(2024, 2, 1)})
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}

	g := NewGantt(6, 24)
	g.SetData(layout)
	g.SetSize(200, 60)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.View()
	}
}
