package service

import (
	"strconv"
	"time"

	"github.com/jensfenty/Exercise-Tracker/internal/repository"
)

// Sentinel bounds used when a supplied range value does not parse. The query
// still runs against the store and the impossible bound matches no rows, so a
// malformed range silently yields an empty log rather than an error.
var (
	invalidLowerBound = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	invalidUpperBound = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// buildLogQuery translates the raw from/to/limit strings into a store query
// for userID's entries.
//
// from and to are independent inclusive bounds; no check that from <= to —
// an inverted range legally yields zero results. A non-numeric or
// non-positive limit applies no cap.
func buildLogQuery(userID string, p LogParams) repository.LogQuery {
	q := repository.LogQuery{UserID: userID}

	if p.From != "" {
		q.HasFrom = true
		if t, ok := parseDate(p.From); ok {
			q.From = toCalendarDay(t)
		} else {
			q.From = invalidLowerBound
		}
	}
	if p.To != "" {
		q.HasTo = true
		if t, ok := parseDate(p.To); ok {
			q.To = toCalendarDay(t)
		} else {
			q.To = invalidUpperBound
		}
	}
	if p.Limit != "" {
		if n, err := strconv.Atoi(p.Limit); err == nil && n > 0 {
			q.Limit = n
		}
	}
	return q
}
