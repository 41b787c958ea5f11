package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeOfDay represents a wall-clock time as minutes since midnight.
// It is the internal currency for slot arithmetic; formatting to a
// 12-hour label happens only at the API boundary.
type TimeOfDay int

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeOfDay is returned for values outside a single day
	// or unparseable clock strings.
	ErrInvalidTimeOfDay = errors.New("types: invalid time of day")
)

// NewTimeOfDay creates a TimeOfDay from hour and minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// FromTime extracts the time-of-day component from a time.Time.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Parse accepts either a 24-hour "15:04" string or a 12-hour
// "3:04 PM" label and returns the structured value.
func Parse(s string) (TimeOfDay, error) {
	if t, err := time.Parse("3:04 PM", s); err == nil {
		return FromTime(t), nil
	}
	if t, err := time.Parse("03:04 PM", s); err == nil {
		return FromTime(t), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return FromTime(t), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Valid reports whether the value falls within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// AddMinutes returns the time shifted forward by m minutes.
// The result may run past midnight; callers that care should check Valid.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// String returns the 24-hour "15:04" form used for storage and logs.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Label returns the 12-hour clock label shown to clients,
// e.g. "8:00 AM", "12:00 PM", "1:00 PM".
func (t TimeOfDay) Label() string {
	return time.Date(0, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC).Format("3:04 PM")
}

// Value implements driver.Valuer; the column type is a "HH:MM" text/time value.
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidTimeOfDay, int(t))
	}
	return t.String(), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as strings
// of the form "08:00:00"; the seconds part is ignored.
func (t *TimeOfDay) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = FromTime(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeOfDay, src)
	}

	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
