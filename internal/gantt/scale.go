package gantt

import (
	"fmt"
	"time"
)

// Scale generates the buckets of one view mode.
type Scale interface {
	// Pad widens the tight task bounds so bars do not touch the edges.
	Pad(min, max time.Time) (time.Time, time.Time)
	// Anchor returns the bucket start containing t.
	Anchor(t time.Time) time.Time
	// Next returns the anchor of the bucket after the one at t.
	Next(t time.Time) time.Time
	// Unit labels the bucket anchored at t.
	Unit(t time.Time, loc Locale) TimeUnit
}

// ScaleFor returns the scale of a view mode. Unknown modes use days.
func ScaleFor(mode ViewMode) Scale {
	switch mode {
	case Weeks:
		return WeekScale{}
	case Months:
		return MonthScale{}
	default:
		return DayScale{}
	}
}

// DayScale has one bucket per calendar day.
type DayScale struct{}

// Pad widens the bounds by 3 days before and 15 days after.
func (DayScale) Pad(min, max time.Time) (time.Time, time.Time) {
	return AddDays(min, -3), AddDays(max, 15)
}

// Anchor returns midnight of t's day.
func (DayScale) Anchor(t time.Time) time.Time { return StartOfDay(t) }

// Next returns midnight of the following day.
func (DayScale) Next(t time.Time) time.Time { return AddDays(t, 1) }

// Unit labels a day with its weekday and day/month.
func (DayScale) Unit(t time.Time, loc Locale) TimeUnit {
	return TimeUnit{
		Date:     t,
		Label:    loc.Weekday(t.Weekday()),
		SubLabel: fmt.Sprintf("%d/%d", t.Day(), int(t.Month())),
	}
}

// WeekScale has one bucket per ISO week, Monday to Sunday.
type WeekScale struct{}

// Pad widens the bounds by 14 days before and 60 days after.
func (WeekScale) Pad(min, max time.Time) (time.Time, time.Time) {
	return AddDays(min, -14), AddDays(max, 60)
}

// Anchor returns the Monday of t's week.
func (WeekScale) Anchor(t time.Time) time.Time { return StartOfWeek(t) }

// Next returns the following Monday.
func (WeekScale) Next(t time.Time) time.Time { return AddDays(t, 7) }

// Unit labels a week with its ISO number and Monday to Sunday range.
func (WeekScale) Unit(t time.Time, loc Locale) TimeUnit {
	end := AddDays(t, 6)
	return TimeUnit{
		Date:     t,
		Label:    fmt.Sprintf("%s %d", loc.Week, WeekNumber(t)),
		SubLabel: fmt.Sprintf("%d/%d - %d/%d", t.Day(), int(t.Month()), end.Day(), int(end.Month())),
	}
}

// MonthScale has one bucket per calendar month.
type MonthScale struct{}

// Pad widens the bounds by one month before and six months after. Days past
// the end of the target month overflow into the next one.
func (MonthScale) Pad(min, max time.Time) (time.Time, time.Time) {
	return AddMonths(min, -1), AddMonths(max, 6)
}

// Anchor returns the first of t's month.
func (MonthScale) Anchor(t time.Time) time.Time { return StartOfMonth(t) }

// Next returns the first of the following month.
func (MonthScale) Next(t time.Time) time.Time { return Midnight(t.Year(), t.Month()+1, 1, t.Location()) }

// Unit labels a month with its name and year.
func (MonthScale) Unit(t time.Time, loc Locale) TimeUnit {
	return TimeUnit{
		Date:     t,
		Label:    loc.Month(t.Month()),
		SubLabel: fmt.Sprintf("%04d", t.Year()),
	}
}

// GenerateUnits walks the window bucket by bucket, inclusive of w.Max. The
// returned window starts at the first bucket anchor actually used.
func GenerateUnits(w Window, mode ViewMode, loc Locale) ([]TimeUnit, Window) {
	scale := ScaleFor(mode)
	start := scale.Anchor(w.Min)

	var units []TimeUnit
	for d := start; !d.After(w.Max); d = scale.Next(d) {
		units = append(units, scale.Unit(d, loc))
	}

	return units, Window{Min: start, Max: w.Max}
}
