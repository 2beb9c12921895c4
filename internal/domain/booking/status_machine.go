package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownStatus     = errors.New("unknown booking status")
	ErrIllegalTransition = errors.New("transition not allowed by the status graph")
)

// StateSpec declares the legal successors of a pipeline stage and the advisory
// blockers that should hold before leaving it.
type StateSpec struct {
	Allowed  []Status
	Blockers []Blocker
}

// StatusGraph is an immutable adjacency table over the booking pipeline. It is
// injected configuration, never shared mutable state, so tests can fabricate
// alternative graphs.
type StatusGraph map[Status]StateSpec

// DefaultStatusGraph is the production pipeline:
// new → preparation → delivery → in-rent → settlement (terminal).
func DefaultStatusGraph() StatusGraph {
	return StatusGraph{
		StatusNew: {
			Allowed:  []Status{StatusPreparation},
			Blockers: []Blocker{BlockerMissingDocuments},
		},
		StatusPreparation: {
			Allowed:  []Status{StatusDelivery},
			Blockers: []Blocker{BlockerNoDriverAssigned},
		},
		StatusDelivery: {
			Allowed:  []Status{StatusInRent},
			Blockers: []Blocker{BlockerPaymentPending},
		},
		StatusInRent: {
			Allowed: []Status{StatusSettlement},
		},
		StatusSettlement: {
			Blockers: []Blocker{BlockerFinesPending},
		},
	}
}

func (g StatusGraph) Contains(s Status) bool {
	_, ok := g[s]
	return ok
}

func (g StatusGraph) Allows(from, to Status) bool {
	spec, ok := g[from]
	if !ok {
		return false
	}
	for _, s := range spec.Allowed {
		if s == to {
			return true
		}
	}
	return false
}

func (g StatusGraph) Blockers(s Status) []Blocker {
	return g[s].Blockers
}

// TransitionEvent is emitted on every successful status move and feeds the
// automation engine and the notification sink.
type TransitionEvent struct {
	BookingID uuid.UUID
	From      Status
	To        Status
	At        time.Time
	// Blockers of the stage that was left, surfaced for the caller to warn on.
	Blockers []Blocker
}

type StatusMachine struct {
	graph StatusGraph
}

func NewStatusMachine(graph StatusGraph) *StatusMachine {
	return &StatusMachine{graph: graph}
}

// RequestTransition validates the requested move against the graph and applies
// it. On rejection the booking is left unmutated.
func (m *StatusMachine) RequestTransition(b *Booking, target Status, now time.Time) (TransitionEvent, error) {
	if !m.graph.Contains(target) {
		return TransitionEvent{}, ErrUnknownStatus
	}
	from := b.Status()
	if target == from || !m.graph.Allows(from, target) {
		return TransitionEvent{}, ErrIllegalTransition
	}

	b.applyStatus(target)

	return TransitionEvent{
		BookingID: b.ID(),
		From:      from,
		To:        target,
		At:        now,
		Blockers:  m.graph.Blockers(from),
	}, nil
}
