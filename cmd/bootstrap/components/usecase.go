package components

import (
	"fleetops/internal/domain/booking"
	"fleetops/internal/domain/schedule"
	"fleetops/internal/pkg/clock"
	"fleetops/internal/usecase/commands"
	"fleetops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	schedule.NewConflictDetector,
	commands.NewAutomationEngine,
	func() *booking.StatusMachine {
		return booking.NewStatusMachine(booking.DefaultStatusGraph())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTransitionCommands,
		commands.NewExtensionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewTaskQueries,
	),
)
