package gantt

import "time"

// Midnight returns the first instant of the calendar day y-m-d in loc.
// Out-of-range days and months normalize like time.Date.
//
// Where a daylight-saving change skips midnight, time.Date lands on the
// previous evening. The day then starts at the zone transition instead.
func Midnight(y int, m time.Month, d int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	want := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if sameDate(t, want) {
		return t
	}

	if _, end := t.ZoneBounds(); !end.IsZero() && sameDate(end, want) {
		return end
	}

	// No usable transition; step until the requested day begins.
	for i := 0; i < 24*4 && !sameDate(t, want); i++ {
		t = t.Add(15 * time.Minute)
	}
	return t
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay strips the time of day, keeping t's location.
func StartOfDay(t time.Time) time.Time {
	return Midnight(t.Year(), t.Month(), t.Day(), t.Location())
}

// StartOfWeek returns the Monday on or before t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	return Midnight(t.Year(), t.Month(), t.Day()-back, t.Location())
}

// StartOfMonth returns the first day of t's month, at midnight.
func StartOfMonth(t time.Time) time.Time {
	return Midnight(t.Year(), t.Month(), 1, t.Location())
}

// AddDays returns the midnight n calendar days after t's day.
func AddDays(t time.Time, n int) time.Time {
	return Midnight(t.Year(), t.Month(), t.Day()+n, t.Location())
}

// AddMonths returns the midnight n calendar months after t's day. Like
// time.AddDate, a day past the end of the target month overflows into the
// next one, so Aug 31 + 6 months is Mar 3.
func AddMonths(t time.Time, n int) time.Time {
	return Midnight(t.Year(), t.Month()+time.Month(n), t.Day(), t.Location())
}

// WeekNumber returns the ISO-8601 week of t's calendar date. The date is
// moved to UTC first so daylight-saving offsets cannot shift it.
func WeekNumber(t time.Time) int {
	_, week := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// hardMax is the latest date the window may reach: June 30 of next year.
func hardMax(now time.Time) time.Time {
	return Midnight(now.Year()+1, time.June, 30, now.Location())
}
