package components

import (
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/clock"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckInCommands,
		commands.NewCheckOutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewReservationQueries,
	),
)
