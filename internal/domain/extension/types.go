package extension

// Status of an extension. Only confirmed → cancelled is produced here;
// invoiced and settlement are informational markers set by billing later.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusConfirmed  Status = "confirmed"
	StatusInvoiced   Status = "invoiced"
	StatusSettlement Status = "settlement"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusInvoiced, StatusSettlement, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}
