package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/gantt-tui/internal/config"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/tui/components"
	"go.uber.org/zap"
)

type fakeSource struct {
	tasks []gantt.Task
	err   error
	calls int
}

func (s *fakeSource) Load(ctx context.Context) ([]gantt.Task, error) {
	s.calls++
	return s.tasks, s.err
}

func (s *fakeSource) Name() string {
	return "fake"
}

var testNow = time.Date(2024, 1, 10, 15, 0, 0, 0, time.Local)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func newTestApp(t *testing.T, src *fakeSource) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Notify.TasksStartingToday = false

	app := NewApp(src, cfg, zap.NewNop(), gantt.WithClock(func() time.Time { return testNow }))
	app.Update(tea.WindowSizeMsg{Width: 160, Height: 30})
	return app
}

func loadedApp(t *testing.T) (*App, *fakeSource) {
	t.Helper()
	src := &fakeSource{tasks: []gantt.Task{
		{ID: "a", Name: "Design", Start: day(2024, 1, 1), End: day(2024, 1, 5)},
		{ID: "b", ParentID: "a", Name: "Wireframes", Start: day(2024, 1, 2), End: day(2024, 1, 3)},
		{ID: "c", Name: "Build", Start: day(2024, 1, 8), End: day(2024, 1, 12)},
	}}
	app := newTestApp(t, src)
	for _, msg := range runCmd(app.loadTasks()) {
		app.Update(msg)
	}
	return app, src
}

func TestApp_LoadTasks(t *testing.T) {
	app, src := loadedApp(t)

	if src.calls != 1 {
		t.Errorf("expected one load, got %d", src.calls)
	}
	layout := app.ganttComp.Layout()
	if layout == nil {
		t.Fatal("expected a layout after loading")
	}
	if len(layout.Rows) != 3 || layout.Rows[1].ID != "b" || !layout.Rows[1].IsSub() {
		t.Errorf("unexpected rows: %+v", layout.Rows)
	}
	if !strings.Contains(app.statusMsg, "3 tasks from fake") {
		t.Errorf("unexpected status %q", app.statusMsg)
	}

	view := app.View()
	for _, want := range []string{"Design", "Wireframes", "Build", "[d] Days"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_LoadError(t *testing.T) {
	app := newTestApp(t, &fakeSource{err: errors.New("boom")})
	for _, msg := range runCmd(app.loadTasks()) {
		app.Update(msg)
	}

	if app.loading {
		t.Error("expected loading to stop")
	}
	if !strings.Contains(app.View(), "Could not load tasks: boom") {
		t.Errorf("expected error in view, got:\n%s", app.View())
	}
}

func TestApp_ModeKeys(t *testing.T) {
	app, _ := loadedApp(t)

	tests := []struct {
		key  tea.KeyMsg
		want gantt.ViewMode
	}{
		{keyMsg("w"), gantt.Weeks},
		{keyMsg("m"), gantt.Months},
		{keyMsg("d"), gantt.Days},
		{tea.KeyMsg{Type: tea.KeyTab}, gantt.Weeks},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, gantt.Days},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, gantt.Months},
	}

	for _, tt := range tests {
		app.Update(tt.key)
		if app.chart.Mode() != tt.want {
			t.Fatalf("after %q: mode = %v, want %v", tt.key.String(), app.chart.Mode(), tt.want)
		}
		if app.ganttComp.Layout().Mode != tt.want {
			t.Fatalf("after %q: layout mode = %v, want %v", tt.key.String(), app.ganttComp.Layout().Mode, tt.want)
		}
	}
}

func TestApp_NavigationForwardsToChart(t *testing.T) {
	app, _ := loadedApp(t)

	_, cmd := app.Update(keyMsg("j"))
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	app.Update(msgs[0])

	if app.ganttComp.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", app.ganttComp.Cursor())
	}
	if !strings.HasPrefix(app.statusMsg, "Wireframes") {
		t.Errorf("expected selected task in status, got %q", app.statusMsg)
	}
}

func TestApp_Copy(t *testing.T) {
	app, _ := loadedApp(t)

	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	defer func() { writeClipboard = orig }()

	_, cmd := app.Update(keyMsg("y"))
	for _, msg := range runCmd(cmd) {
		app.Update(msg)
	}

	if copied != "Design\t2024-01-01\t2024-01-05" {
		t.Errorf("unexpected clipboard text %q", copied)
	}
	if app.statusMsg != "Copied Design" {
		t.Errorf("unexpected status %q", app.statusMsg)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	_, cmd = app.Update(keyMsg("y"))
	for _, msg := range runCmd(cmd) {
		app.Update(msg)
	}
	if app.err == nil || !strings.Contains(app.err.Error(), "no clipboard") {
		t.Errorf("expected clipboard error, got %v", app.err)
	}
}

func TestApp_Refresh(t *testing.T) {
	app, src := loadedApp(t)

	_, cmd := app.Update(keyMsg("r"))
	if !app.loading {
		t.Error("expected loading during refresh")
	}
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(tasksLoadedMsg); ok {
			app.Update(msg)
		}
	}

	if src.calls != 2 {
		t.Errorf("expected a second load, got %d", src.calls)
	}
	if app.loading {
		t.Error("expected loading to finish")
	}
}

func TestApp_Help(t *testing.T) {
	app, _ := loadedApp(t)

	app.Update(keyMsg("?"))
	if !app.showHelp {
		t.Fatal("expected help to open")
	}
	if !strings.Contains(app.View(), "Keyboard Shortcuts") {
		t.Error("expected help in view")
	}

	// Mode keys are ignored while help is open
	app.Update(keyMsg("w"))
	if app.chart.Mode() != gantt.Days {
		t.Error("mode should not change while help is open")
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	for _, msg := range runCmd(cmd) {
		app.Update(msg)
	}
	if app.showHelp {
		t.Error("expected help to close")
	}
}

func TestApp_Quit(t *testing.T) {
	app, _ := loadedApp(t)

	for _, key := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := app.Update(key)
		msgs := runCmd(cmd)
		if len(msgs) != 1 {
			t.Fatalf("%s: expected quit message", key)
		}
		if _, ok := msgs[0].(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg, got %T", key, msgs[0])
		}
	}
}

func TestNotifier_StartingToday(t *testing.T) {
	var sent []string
	n := NewNotifier(true, zap.NewNop())
	n.send = func(title, message string) error {
		sent = append(sent, message)
		return nil
	}

	tasks := []gantt.Task{
		{ID: "1", Name: "Kickoff", Start: day(2024, 1, 10).Add(9 * time.Hour), End: day(2024, 1, 11)},
		{ID: "2", Name: "Later", Start: day(2024, 1, 11), End: day(2024, 1, 12)},
	}

	runCmd(n.StartingToday(tasks, testNow))
	if len(sent) != 1 || sent[0] != "Starts today: Kickoff" {
		t.Fatalf("unexpected notifications %v", sent)
	}

	if cmd := n.StartingToday(tasks, testNow); cmd != nil {
		t.Error("tasks must be notified only once")
	}

	disabled := NewNotifier(false, zap.NewNop())
	if cmd := disabled.StartingToday(tasks, testNow); cmd != nil {
		t.Error("disabled notifier should not return a command")
	}
}

func TestKeymap_HandleKey(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		key    tea.KeyMsg
		action string
		ok     bool
	}{
		{keyMsg("q"), "quit", true},
		{keyMsg("?"), "help", true},
		{keyMsg("t"), "today", true},
		{keyMsg("y"), "copy", true},
		{tea.KeyMsg{Type: tea.KeyTab}, "next_mode", true},
		{keyMsg("j"), "", false},
		{keyMsg("L"), "", false},
	}

	for _, tt := range tests {
		action, ok := km.HandleKey(tt.key)
		if action != tt.action || ok != tt.ok {
			t.Errorf("HandleKey(%q) = %q, %v; want %q, %v", tt.key.String(), action, ok, tt.action, tt.ok)
		}
	}
}

func TestApp_SelectionMessage(t *testing.T) {
	app, _ := loadedApp(t)
	row := app.ganttComp.Layout().Rows[2]
	row.Placed = false

	app.Update(components.RowSelectedMsg{Row: row})
	if !strings.Contains(app.statusMsg, "starts after the timeline") {
		t.Errorf("unexpected status %q", app.statusMsg)
	}
}

func TestApp_TickNotifiesWithChartClock(t *testing.T) {
	src := &fakeSource{tasks: []gantt.Task{
		{ID: "k", Name: "Kickoff", Start: day(2024, 1, 10), End: day(2024, 1, 12)},
	}}
	app := newTestApp(t, src)
	for _, msg := range runCmd(app.loadTasks()) {
		app.Update(msg)
	}

	app.notifier = NewNotifier(true, zap.NewNop())
	app.notifier.send = func(string, string) error { return nil }

	// The tick carries the wall clock; the chart clock still says Jan 10.
	_, cmd := app.Update(tickMsg(time.Date(2031, 5, 1, 9, 0, 0, 0, time.Local)))
	if cmd == nil {
		t.Fatal("expected the next tick to be scheduled")
	}
	if !app.notifier.notified["k"] {
		t.Fatal("expected the task starting on the chart's today to be notified")
	}
	if cmd := app.notifier.StartingToday(app.chart.Tasks(), testNow); cmd != nil {
		t.Error("task should not be notified twice")
	}
}
