package service

import "github.com/jensfenty/Exercise-Tracker/internal/models"

// logDateLayout renders "Wed May 10 2023": weekday and month abbreviations,
// zero-padded day, four-digit year. Consumers depend on this exact shape;
// it is not ISO-8601.
const logDateLayout = "Mon Jan 02 2006"

// EntryDetail is the response shape for a single created entry.
type EntryDetail struct {
	ID          string `json:"_id"` // the owning user's id, not the entry's
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// LogEntry is one element of a UserLog listing.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// UserLog is the response shape for a log listing. Count always equals the
// number of entries returned, after filtering and limiting.
type UserLog struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// formatEntry shapes a persisted entry for the entry-creation response.
func formatEntry(u models.User, e models.Exercise) EntryDetail {
	return EntryDetail{
		ID:          u.ID,
		Username:    u.Username,
		Date:        e.Date.Format(logDateLayout),
		Duration:    e.Duration,
		Description: e.Description,
	}
}

// formatLog shapes an ordered slice of entries for the log response.
func formatLog(u models.User, entries []models.Exercise) UserLog {
	log := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		log = append(log, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.Format(logDateLayout),
		})
	}
	return UserLog{
		ID:       u.ID,
		Username: u.Username,
		Count:    len(log),
		Log:      log,
	}
}
