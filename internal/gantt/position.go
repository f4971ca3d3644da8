package gantt

import (
	"sort"
	"time"
)

// firstAtOrAfter returns the index of the first unit whose anchor is not
// before d. ok is false when every unit is before d.
func firstAtOrAfter(units []TimeUnit, d time.Time) (int, bool) {
	i := sort.Search(len(units), func(i int) bool {
		return !units[i].Date.Before(d)
	})
	return i, i < len(units)
}

// Locate maps a task's dates onto the unit sequence.
//
// The task starts at the first unit on or after its start day and ends at the
// first unit on or after its end day, or at the last unit when it runs past
// the window. Every placed task spans at least one unit. ok is false when the
// task starts after the last unit, in which case there is nothing to place.
func Locate(units []TimeUnit, start, end time.Time) (Position, bool) {
	n := len(units)
	if n == 0 {
		return Position{}, false
	}
	loc := units[0].Date.Location()

	startIndex, ok := firstAtOrAfter(units, StartOfDay(start.In(loc)))
	if !ok {
		return Position{}, false
	}

	endIndex, ok := firstAtOrAfter(units, StartOfDay(end.In(loc)))
	if !ok {
		endIndex = n - 1
	}

	span := endIndex - startIndex + 1
	if span < 1 {
		span = 1
	}

	return Position{
		StartIndex: startIndex,
		Span:       span,
		Left:       float64(startIndex) / float64(n),
		Width:      float64(span) / float64(n),
	}, true
}

// TodayIndex finds the unit anchored exactly on today's midnight. Only day
// units normally match; week and month anchors rarely fall on today.
func TodayIndex(units []TimeUnit, now time.Time) Marker {
	if len(units) == 0 {
		return Marker{Index: -1}
	}
	today := StartOfDay(now.In(units[0].Date.Location()))
	for i, u := range units {
		if u.Date.Equal(today) {
			return Marker{
				Index:  i,
				Offset: float64(i) / float64(len(units)),
				OK:     true,
			}
		}
	}
	return Marker{Index: -1}
}
