package gantt

import (
	"fmt"
	"time"
)

// Options controls a layout computation.
type Options struct {
	// Now is the reference time for the today marker, the empty-list window
	// and the far-future clamp. Zero means time.Now().
	Now    time.Time
	Locale Locale
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o Options) locale() Locale {
	if o.Locale.Week == "" {
		return English
	}
	return o.Locale
}

// Build computes the full chart layout for tasks in the given mode.
func Build(tasks []Task, mode ViewMode, opts Options) (*Layout, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownViewMode, int(mode))
	}
	if err := Validate(tasks); err != nil {
		return nil, err
	}

	nodes, err := Organize(tasks)
	if err != nil {
		return nil, err
	}

	now := opts.now()
	window := ResolveWindow(tasks, mode, now)
	units, window := GenerateUnits(window, mode, opts.locale())

	rows := make([]Row, len(nodes))
	for i, n := range nodes {
		pos, placed := Locate(units, n.Start, n.End)
		rows[i] = Row{Node: n, Position: pos, Placed: placed}
	}

	return &Layout{
		Mode:   mode,
		Window: window,
		Units:  units,
		Today:  TodayIndex(units, now),
		Rows:   rows,
		Empty:  len(tasks) == 0,
	}, nil
}
