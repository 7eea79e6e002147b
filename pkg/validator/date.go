package validator

import (
	"strings"
	"time"
)

// dateLayouts lists the accepted date formats, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
	time.ANSIC,
	"Mon Jan 2 2006 15:04:05 GMT-0700",
	"Mon Jan 2 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
	"2006/01/02",
}

// ParseDate parses s with the first matching accepted layout. A trailing
// zone name in parentheses, as in "GMT+0700 (Indochina Time)", is ignored.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidDate reports whether s is a non-empty, parseable date.
func IsValidDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

// Now returns the clock's current time, falling back to time.Now for a nil clock.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
