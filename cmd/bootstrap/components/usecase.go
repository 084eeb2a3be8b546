package components

import (
	"seminar-booking/internal/pkg/clock"
	"seminar-booking/internal/pkg/config"
	"seminar-booking/internal/pkg/gate"
	"seminar-booking/internal/pkg/jwt"
	"seminar-booking/internal/usecase/commands"
	"seminar-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		clock.NewRealClock,
		NewReservationCommands,
		commands.NewReconcileUseCase,
		NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSeminarQueries,
		queries.NewBookingQueries,
	),
)

func NewReservationCommands(
	seminarRepo commands.SeminarRepository,
	bookingRepo commands.BookingRepository,
	gateway commands.PaymentGateway,
	notifier commands.Notifier,
	g *gate.Gate,
	clk clock.Clock,
	cfg config.Config,
) commands.ReservationCommands {
	return commands.NewReservationUseCase(seminarRepo, bookingRepo, gateway, notifier, g, clk, cfg.Reservation.LockWait)
}

func NewAdminCommands(
	seminarRepo commands.SeminarRepository,
	bookingRepo commands.BookingRepository,
	gateway commands.PaymentGateway,
	notifier commands.Notifier,
	jwtService *jwt.Service,
	cfg config.Config,
) commands.AdminCommands {
	return commands.NewAdminUseCase(seminarRepo, bookingRepo, gateway, notifier, jwtService, cfg.Admin.PasswordHash)
}
