package clock

import "time"

// Clock supplies the current time to services so date-dependent logic can be
// pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Today returns the calendar date of c.Now() as midnight UTC.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf drops the time-of-day and zone, keeping the calendar date as seen in
// t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewSystem resolves tz (an IANA name) and falls back to UTC when it is empty.
func NewSystem(tz string) (SystemClock, error) {
	if tz == "" || tz == "UTC" {
		return SystemClock{Location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return SystemClock{}, err
	}
	return SystemClock{Location: loc}, nil
}
