package components

import (
	"seminar-booking/internal/handler"
	"seminar-booking/internal/handler/api"
	"seminar-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSeminarHandler,
		api.NewReservationHandler,
		api.NewMyPageHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		middleware.NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
