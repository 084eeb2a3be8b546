package components

import (
	"seminar-booking/internal/infra/readstore"
	"seminar-booking/internal/infra/repository"
	"seminar-booking/internal/usecase/commands"
	"seminar-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewSeminarRepository,
			fx.As(new(commands.SeminarRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewSeminarReadStore,
			fx.As(new(queries.SeminarViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)
