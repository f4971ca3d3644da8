package source

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"gopkg.in/yaml.v3"
)

// dateFormats are tried in order. Zone-less values are read as local time.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// Palette colors tasks that do not set one, by position in the file.
var Palette = []string{
	"#3b82f6", // blue
	"#10b981", // green
	"#f59e0b", // amber
	"#ef4444", // red
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#14b8a6", // teal
}

// Record is one task as written in a task file. YAML is a superset of JSON,
// so the same decoder reads both.
type Record struct {
	ID        string `yaml:"id"`
	ParentID  string `yaml:"parentId"`
	Name      string `yaml:"name"`
	StartDate string `yaml:"startDate"`
	EndDate   string `yaml:"endDate"`
	Color     string `yaml:"color"`
}

type document struct {
	Tasks []Record `yaml:"tasks"`
}

// File reads tasks from a YAML or JSON file. The file holds either a list of
// records or a mapping with a "tasks" list.
type File struct {
	Path string
}

// Name implements Source.
func (f *File) Name() string {
	return f.Path
}

// Load implements Source.
func (f *File) Load(ctx context.Context) ([]gantt.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse task file %s: %w", f.Path, err)
	}

	return ParseRecords(records)
}

func decodeRecords(data []byte) ([]Record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil // Empty file
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var records []Record
		if err := root.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Tasks, nil
	}

	return nil, fmt.Errorf("line %d: expected a task list or a mapping with \"tasks\"", root.Line)
}

// ParseRecords converts file records into chart tasks. Records without an id
// get a random one, records without a color get one from Palette.
func ParseRecords(records []Record) ([]gantt.Task, error) {
	tasks := make([]gantt.Task, 0, len(records))

	for i, r := range records {
		start, err := ParseDate(r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("task %d (%s): invalid startDate: %w", i+1, r.Name, err)
		}
		end, err := ParseDate(r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("task %d (%s): invalid endDate: %w", i+1, r.Name, err)
		}

		t := gantt.Task{
			ID:       strings.TrimSpace(r.ID),
			ParentID: strings.TrimSpace(r.ParentID),
			Name:     r.Name,
			Start:    start,
			End:      end,
			Color:    r.Color,
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.Color == "" {
			t.Color = Palette[i%len(Palette)]
		}

		tasks = append(tasks, t)
	}

	if err := gantt.Validate(tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ParseDate parses an ISO date or datetime.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}

	for _, format := range dateFormats {
		if t, err := time.ParseInLocation(format, s, time.Local); err == nil {
			return t.In(time.Local), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date %q", s)
}
