package booking

// Status is a stage of the operational pipeline, intake to settlement.
type Status string

const (
	StatusNew         Status = "new"
	StatusPreparation Status = "preparation"
	StatusDelivery    Status = "delivery"
	StatusInRent      Status = "in-rent"
	StatusSettlement  Status = "settlement"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusPreparation, StatusDelivery, StatusInRent, StatusSettlement:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the pipeline ends here.
func (s Status) IsTerminal() bool {
	return s == StatusSettlement
}

// AllowsTargetTime reports whether an SLA checkpoint may be set in this stage.
func (s Status) AllowsTargetTime() bool {
	switch s {
	case StatusNew, StatusPreparation, StatusDelivery:
		return true
	default:
		return false
	}
}

// Blocker is a named condition that conceptually should hold before leaving a
// stage. Blockers are advisory: they are surfaced on the transition event, not
// enforced as preconditions.
type Blocker string

const (
	BlockerMissingDocuments Blocker = "missing-documents"
	BlockerNoDriverAssigned Blocker = "no-driver-assigned"
	BlockerPaymentPending   Blocker = "payment-pending"
	BlockerFinesPending     Blocker = "fines-pending"
)

func (b Blocker) String() string {
	return string(b)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)
