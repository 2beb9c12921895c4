package commands

import (
	"context"
	"log/slog"
)

// Event names delivered to the external notification sink.
const (
	EventTransitionApplied  = "transition-applied"
	EventDriverAutoAssigned = "driver-auto-assigned"
	EventExtensionConfirmed = "extension-confirmed"
	EventExtensionCancelled = "extension-cancelled"
	EventSettlementReached  = "settlement-reached"
)

// EventPublisher is the outbound port to the notification system. Publishing
// happens after commit and is best-effort: a failed publish degrades to a log
// line, it never fails the command.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any) error
}

func publishQuietly(ctx context.Context, pub EventPublisher, logger *slog.Logger, event string, payload any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, event, payload); err != nil {
		logger.Warn("event publish failed", "event", event, "error", err.Error())
	}
}

// NopPublisher drops events; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error {
	return nil
}
