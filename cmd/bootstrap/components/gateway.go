package components

import (
	"seminar-booking/internal/infra/mail"
	"seminar-booking/internal/infra/square"
	"seminar-booking/internal/pkg/config"
	"seminar-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

// GatewayModule wires the outbound integrations: Square checkout and SMTP mail.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewSquareClient,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewMailNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewSquareClient(cfg config.Config) *square.Client {
	return square.NewClient(cfg.Square)
}

func NewMailNotifier(cfg config.Config) (*mail.Notifier, error) {
	return mail.NewNotifier(cfg.Mail)
}
