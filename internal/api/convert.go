package api

import (
	"time"

	"github.com/hy4ri/gantt-tui/internal/gantt"
)

// DefaultColor is used for tasks whose project color is unknown.
const DefaultColor = "#808080"

// projectColors maps Todoist color names to their hex values.
var projectColors = map[string]string{
	"berry_red":   "#b8256f",
	"red":         "#db4035",
	"orange":      "#ff9933",
	"yellow":      "#fad000",
	"olive_green": "#afb83b",
	"lime_green":  "#7ecc49",
	"green":       "#299438",
	"mint_green":  "#6accbc",
	"teal":        "#158fad",
	"sky_blue":    "#14aaf5",
	"light_blue":  "#96c3eb",
	"blue":        "#4073ff",
	"grape":       "#884dff",
	"violet":      "#af38eb",
	"lavender":    "#eb96eb",
	"magenta":     "#e05194",
	"salmon":      "#ff8d85",
	"charcoal":    "#808080",
	"grey":        "#b8b8b8",
	"taupe":       "#ccac93",
}

// ColorHex returns the hex value of a Todoist color name.
func ColorHex(name string) string {
	if hex, ok := projectColors[name]; ok {
		return hex
	}
	return DefaultColor
}

// parseDay parses a Todoist date ("2006-01-02") or datetime as a local day.
func parseDay(s string) (time.Time, bool) {
	if len(s) >= 10 {
		if d, err := time.ParseInLocation(time.DateOnly, s[:10], time.Local); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// Span returns the chart dates of a task: it starts on its due date and ends
// on its deadline when that is not earlier, otherwise after its duration in
// days, otherwise on the due date. ok is false for tasks without a due date.
func (t *Task) Span() (start, end time.Time, ok bool) {
	if t.Due == nil {
		return time.Time{}, time.Time{}, false
	}
	start, ok = parseDay(t.Due.Date)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end = start

	if t.Deadline != nil {
		if d, ok := parseDay(t.Deadline.Date); ok && !d.Before(start) {
			return start, d, true
		}
	}

	if t.Duration != nil && t.Duration.Unit == "day" && t.Duration.Amount > 1 {
		end = start.AddDate(0, 0, t.Duration.Amount-1)
	}

	return start, end, true
}

// ToGanttTasks converts Todoist tasks to chart tasks, coloring each by its
// project. Completed, deleted and undated tasks are skipped.
func ToGanttTasks(tasks []Task, projects []Project) []gantt.Task {
	colors := make(map[string]string, len(projects))
	for _, p := range projects {
		colors[p.ID] = ColorHex(p.Color)
	}

	out := make([]gantt.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Checked || t.IsDeleted {
			continue
		}
		start, end, ok := t.Span()
		if !ok {
			continue
		}

		color, ok := colors[t.ProjectID]
		if !ok {
			color = DefaultColor
		}

		gt := gantt.Task{
			ID:    t.ID,
			Name:  t.Content,
			Start: start,
			End:   end,
			Color: color,
		}
		if t.ParentID != nil {
			gt.ParentID = *t.ParentID
		}
		out = append(out, gt)
	}

	return out
}
