package datetime

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "03:04 PM"
)

// Clock is the only source of "now" for attendance writes.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// ClockFunc adapts a function, mostly for tests.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// DateOf returns the calendar date of t (in t's own location) as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(v string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, v, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders a punch time as "09:00 AM" in loc.
func FormatClock(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(ClockLayout)
}

func FormatClockPtr(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	v := FormatClock(*t, loc)
	return &v
}

// Days lists every date from..to inclusive, ascending. Empty when from is after to.
func Days(from, to time.Time) []time.Time {
	from, to = DateOf(from), DateOf(to)
	if from.After(to) {
		return nil
	}
	days := make([]time.Time, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MonthBounds returns the first and last date of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}
