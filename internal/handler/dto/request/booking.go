package request

import (
	"fleetops/internal/domain/booking"
)

type TransitionRequest struct {
	Target string `json:"target" binding:"required"`
}

func (r TransitionRequest) TargetStatus() booking.Status {
	return booking.Status(r.Target)
}
