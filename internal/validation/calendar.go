package validation

import (
	"fmt"
	"strings"
	"time"
)

const calendarLayout = "2006-01-02T15:04:05"

// CalendarDateTime is a zone-less wall-clock timestamp as produced by the
// admin date pickers: YYYY-MM-DDTHH:MM:SS, optionally suffixed "Z". The
// Zulu flag is retained so formatting round-trips the source string
// exactly.
type CalendarDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
	Zulu   bool
}

// ParseISO parses a calendar date-time string. Fractional seconds and
// numeric zone offsets are rejected.
func ParseISO(value string) (CalendarDateTime, error) {
	raw := value
	zulu := strings.HasSuffix(raw, "Z")
	if zulu {
		raw = strings.TrimSuffix(raw, "Z")
	}
	t, err := time.Parse(calendarLayout, raw)
	if err != nil {
		return CalendarDateTime{}, fmt.Errorf("parse calendar date-time %q: %w", value, err)
	}
	return CalendarDateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Zulu:   zulu,
	}, nil
}

// ISO renders the timestamp back to its wire form, re-emitting the "Z"
// suffix only when the source carried one.
func (c CalendarDateTime) ISO() string {
	s := c.UTC().Format(calendarLayout)
	if c.Zulu {
		return s + "Z"
	}
	return s
}

// UTC interprets the wall-clock fields as a UTC instant.
func (c CalendarDateTime) UTC() time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)
}
