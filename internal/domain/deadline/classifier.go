// Package deadline buckets timestamped obligations (task deadlines, SLA
// checkpoints) by urgency for task boards and automations.
package deadline

import "time"

type State string

const (
	StateCompleted State = "completed"
	StateOverdue   State = "overdue"
	StateSoon      State = "soon"
	StateScheduled State = "scheduled"
)

// soonWindow is how far ahead a deadline counts as imminent.
const soonWindow = 6 * time.Hour

type Classification struct {
	State State
	// Until is the remaining time; negative when overdue, zero when completed.
	Until time.Duration
}

func Classify(deadline time.Time, isCompleted bool, now time.Time) Classification {
	if isCompleted {
		return Classification{State: StateCompleted}
	}

	until := deadline.Sub(now)
	switch {
	case until < 0:
		return Classification{State: StateOverdue, Until: until}
	case until > 0 && until <= soonWindow:
		return Classification{State: StateSoon, Until: until}
	default:
		return Classification{State: StateScheduled, Until: until}
	}
}
