package util

import (
	"time"
)

// DateLayout is the calendar date format used across the platform for
// availability snapshots and travel dates. Lexical order on these
// strings matches chronological order.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
