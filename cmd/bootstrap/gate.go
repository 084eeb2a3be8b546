package bootstrap

import (
	"seminar-booking/internal/pkg/gate"

	"go.uber.org/fx"
)

var GateModule = fx.Module("gate",
	fx.Provide(
		gate.New,
	),
)
