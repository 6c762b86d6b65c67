package service

import (
	"strconv"
	"strings"
	"time"
)

// Accepted date layouts for entry dates and log range bounds.
const (
	layoutDate = "2006-01-02"
)

var dateLayouts = []string{layoutDate, time.RFC3339}

// parseDate tries the accepted layouts, normalizing to UTC.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// toCalendarDay truncates t to midnight UTC. Entries are stored at
// day granularity.
func toCalendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// validateNewEntry checks required fields, coerces duration, and resolves the
// entry date (supplied-and-parsed, or today when omitted). Pure function of
// its inputs apart from reading the clock for the default date.
//
// Negative durations are coerced but not range-checked, matching the
// historical behavior consumers rely on.
func validateNewEntry(description, duration, date string) (int, time.Time, error) {
	if strings.TrimSpace(description) == "" || strings.TrimSpace(duration) == "" {
		return 0, time.Time{}, ErrMissingField
	}

	n, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		// Accept fractional input the way a generic numeric coercion would,
		// truncating to whole minutes.
		f, ferr := strconv.ParseFloat(strings.TrimSpace(duration), 64)
		if ferr != nil {
			return 0, time.Time{}, ErrInvalidNumber
		}
		n = int(f)
	}

	if date == "" {
		return n, toCalendarDay(time.Now()), nil
	}
	t, ok := parseDate(date)
	if !ok {
		return 0, time.Time{}, ErrInvalidDate
	}
	return n, toCalendarDay(t), nil
}
