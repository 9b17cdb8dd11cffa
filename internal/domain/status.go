package domain

import "time"

// Status is the lifecycle classification of a camp relative to a query
// instant. It is computed per request and never persisted.
//
// The integer values double as the sort rank: active camps order before
// upcoming ones. Expired camps are dropped before ranking ever sees them.
type Status int

const (
	StatusActive Status = iota
	StatusUpcoming
	StatusExpired
)

// String returns the lowercase name used in logs.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusUpcoming:
		return "upcoming"
	default:
		return "expired"
	}
}

// ResolveStatus classifies a camp as active, upcoming, or expired at the
// given instant. Pure function; now is converted to UTC internally.
//
// Recurring camps repeat every calendar day, so their stored date is ignored
// and they are never expired: once today's run has finished they become
// upcoming again for tomorrow.
//
// One-off camps expire when their date passes, or — on the day itself — when
// the current time is past their end time. A camp with no end time only
// expires at the date boundary.
//
// Comparisons are plain string comparisons over the zero-padded "YYYY-MM-DD"
// and "HH:MM" forms, which sort correctly as text.
func ResolveStatus(c Camp, now time.Time) Status {
	now = now.UTC()
	today := now.Format("2006-01-02")
	nowTime := now.Format("15:04")

	start := c.StartTime
	if start == "" {
		// No start time means the event is considered started at midnight.
		start = "00:00"
	}

	if c.IsRecurring {
		if c.EndTime != "" && nowTime > c.EndTime {
			return StatusUpcoming // done for today, runs again tomorrow
		}
		if nowTime >= start {
			return StatusActive
		}
		return StatusUpcoming
	}

	if c.Date < today {
		return StatusExpired
	}
	if c.Date > today {
		return StatusUpcoming
	}

	// The camp runs today.
	if c.EndTime != "" && nowTime > c.EndTime {
		return StatusExpired
	}
	if nowTime >= start {
		return StatusActive
	}
	return StatusUpcoming
}
