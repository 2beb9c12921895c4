package bootstrap

import (
	"context"
	"log/slog"

	"fleetops/internal/infra/mq"
	"fleetops/internal/pkg/config"
	"fleetops/internal/usecase/commands"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher wires the RabbitMQ publisher when a broker is configured
// and falls back to a no-op sink otherwise, so local runs need no broker.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if cfg.MQ.URL == "" {
		logger.Info("no message broker configured, events will be dropped")
		return commands.NopPublisher{}, nil
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	logger.Info("event publisher initialized", "exchange", cfg.MQ.Exchange)
	return pub, nil
}
