package audit

import "time"

// HistoryEntry is a human-readable, append-only log line on an aggregate.
type HistoryEntry struct {
	At   time.Time
	Text string
}

// TimelineEntry is a machine-tagged, append-only log line used by reporting.
type TimelineEntry struct {
	At   time.Time
	Tag  string
	Text string
}
