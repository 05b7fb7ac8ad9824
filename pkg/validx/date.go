package validx

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned by ParseDate for anything that is not ISO-8601.
var ErrInvalidDate = errors.New("validx: invalid ISO-8601 date")

// Accepted layouts, most specific first. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses the ISO-8601 forms clients commonly send: full RFC 3339
// timestamps, zone-less timestamps and plain calendar dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
