package models

import (
	"fmt"
	"strings"
	"time"
)

// CalendarLayout is how exercise dates are rendered over HTTP, e.g. "Sun Jan 15 2023".
const CalendarLayout = "Mon Jan 02 2006"

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// acceptedDateLayouts are tried in order. The unpadded and slash forms and the
// long month names cover what browsers and JS clients commonly send.
var acceptedDateLayouts = []string{
	layoutDate,
	time.RFC3339,
	layoutDateTime,
	CalendarLayout,
	"2006-1-2",
	"2006/1/2",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// ParseCalendarDate accepts YYYY-MM-DD (padding optional, '-' or '/'), RFC3339,
// "YYYY-MM-DD HH:MM:SS", month-name forms or the rendered calendar form, and
// keeps only the calendar date.
func ParseCalendarDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TruncateToDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid date %q, expected one of: 'YYYY-MM-DD', 'YYYY/MM/DD', RFC3339, 'YYYY-MM-DD HH:MM:SS', 'January 2, 2006', 'Mon Jan 02 2006'",
		s,
	)
}

// TruncateToDate drops the time of day, keeping the date as written in t's location.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatCalendarDate renders t with CalendarLayout.
func FormatCalendarDate(t time.Time) string {
	return t.Format(CalendarLayout)
}
