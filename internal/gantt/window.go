package gantt

import "time"

// emptyWindowDays is the half-width of the window shown when there are no tasks.
const emptyWindowDays = 7

// ResolveWindow computes the date range to display for the given tasks.
//
// With no tasks the window is today ± 7 days in every mode. Otherwise it
// spans the earliest start to the latest end, truncated to midnight and padded
// by the mode's scale. The end never passes June 30 of the year after now.
// Task dates are moved to now's location before truncation.
func ResolveWindow(tasks []Task, mode ViewMode, now time.Time) Window {
	loc := now.Location()

	if len(tasks) == 0 {
		today := StartOfDay(now)
		return Window{
			Min: AddDays(today, -emptyWindowDays),
			Max: AddDays(today, emptyWindowDays),
		}
	}

	min, max := tasks[0].Start.In(loc), tasks[0].Start.In(loc)
	for _, t := range tasks {
		for _, d := range []time.Time{t.Start.In(loc), t.End.In(loc)} {
			if d.Before(min) {
				min = d
			}
			if d.After(max) {
				max = d
			}
		}
	}

	min, max = ScaleFor(mode).Pad(StartOfDay(min), StartOfDay(max))

	if limit := hardMax(now); max.After(limit) {
		max = limit
	}
	if min.After(max) {
		min = max
	}

	return Window{Min: min, Max: max}
}
