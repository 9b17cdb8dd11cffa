// Package domain contains the core data types and pure query logic for the
// Bhandara camp finder. This package has no knowledge of HTTP or SQL and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Camp source values. Source records where a camp came from and is
// informational only — it never affects filtering or ranking.
const (
	SourceUser     = "user"     // submitted through the public form
	SourceVerified = "verified" // confirmed by a moderator
	SourceCron     = "cron"     // imported by a scheduled job
)

// Camp represents a single free-food-distribution event.
//
// Date, StartTime, and EndTime are stored as zero-padded UTC text
// ("YYYY-MM-DD" and "HH:MM") and compared lexicographically, which is correct
// for those fixed formats. The format is enforced at ingestion by the service
// layer so everything downstream can rely on it.
type Camp struct {
	ID             uuid.UUID
	Title          string
	Description    string // optional
	Address        string
	Latitude       float64
	Longitude      float64
	Date           string // "YYYY-MM-DD"; informational for recurring camps
	StartTime      string // "HH:MM", 24-hour
	EndTime        string // "HH:MM"; empty means the event has no intraday end
	OrganizerName  string // optional
	OrganizerPhone string // optional
	ImageURL       string // optional data URL
	Source         string
	IsActive       bool // soft-delete flag; false hides the camp from search
	IsRecurring    bool // repeats every day at the same start/end time
	CreatedAt      time.Time
}
