package template

import (
	"fmt"
	"time"
)

// isoLayout is the minute-precision, timezone-naive layout used on the
// wire: no offset, no seconds.
const isoLayout = "2006-01-02T15:04"

// Time returns dt as a time.Time pinned to UTC purely as an arithmetic
// frame — never interpreted as a real timezone, never converted. This lets
// anchoring reuse time.Time's calendar-correct Add instead of hand-rolling
// month/day rollover, while keeping the naive, offset-free contract this
// type is meant to carry.
func (dt LocalDateTime) Time() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, 0, 0, time.UTC)
}

// FromTime builds a LocalDateTime from a UTC-pinned time.Time, the inverse
// of Time.
func FromTime(t time.Time) LocalDateTime {
	return LocalDateTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// String renders dt in the minute-precision ISO layout used on the wire.
func (dt LocalDateTime) String() string {
	return dt.Time().Format(isoLayout)
}

// ParseLocalDateTime parses the minute-precision ISO layout Template input
// carries.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("template: invalid local datetime %q: %w", s, err)
	}
	return FromTime(t), nil
}

// AddMinutes returns dt shifted forward (or, for a negative n, backward) by
// n minutes.
func (dt LocalDateTime) AddMinutes(n int) LocalDateTime {
	return FromTime(dt.Time().Add(time.Duration(n) * time.Minute))
}
