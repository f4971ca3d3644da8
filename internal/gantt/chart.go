package gantt

import "time"

// Chart owns the view-mode selection of one chart instance and caches the
// last layout until tasks, mode, locale or the current day change.
// A Chart is not safe for concurrent use.
type Chart struct {
	tasks  []Task
	mode   ViewMode
	locale Locale
	clock  func() time.Time

	layout *Layout
	err    error
	day    time.Time // Day the cached layout was computed for
	dirty  bool
}

// ChartOption configures a Chart.
type ChartOption func(*Chart)

// WithClock injects the time source.
func WithClock(clock func() time.Time) ChartOption {
	return func(c *Chart) {
		c.clock = clock
	}
}

// WithMode sets the initial view mode.
func WithMode(mode ViewMode) ChartOption {
	return func(c *Chart) {
		if mode.Valid() {
			c.mode = mode
		}
	}
}

// WithLocale sets the label locale.
func WithLocale(loc Locale) ChartOption {
	return func(c *Chart) {
		c.locale = loc
	}
}

// NewChart creates a chart in Days mode with no tasks.
func NewChart(opts ...ChartOption) *Chart {
	c := &Chart{
		mode:   Days,
		locale: English,
		clock:  time.Now,
		dirty:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTasks replaces the task list. The slice is copied.
func (c *Chart) SetTasks(tasks []Task) {
	c.tasks = append([]Task(nil), tasks...)
	c.dirty = true
}

// Tasks returns the current task list.
func (c *Chart) Tasks() []Task {
	return c.tasks
}

// SetMode selects a view mode. Selecting the current mode is a no-op.
func (c *Chart) SetMode(mode ViewMode) {
	if mode == c.mode || !mode.Valid() {
		return
	}
	c.mode = mode
	c.dirty = true
}

// Mode returns the selected view mode.
func (c *Chart) Mode() ViewMode {
	return c.mode
}

// SetLocale changes the label locale.
func (c *Chart) SetLocale(loc Locale) {
	c.locale = loc
	c.dirty = true
}

// Now returns the chart's current time.
func (c *Chart) Now() time.Time {
	return c.clock()
}

// Layout returns the layout for the current inputs, recomputing it only when
// an input changed since the last call.
func (c *Chart) Layout() (*Layout, error) {
	now := c.clock()
	today := StartOfDay(now)

	if !c.dirty && today.Equal(c.day) {
		return c.layout, c.err
	}

	c.layout, c.err = Build(c.tasks, c.mode, Options{Now: now, Locale: c.locale})
	c.day = today
	c.dirty = false

	return c.layout, c.err
}
