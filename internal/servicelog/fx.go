package servicelog

import (
	"github.com/garagekit/garagekit/internal/servicelog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("servicelog.service",
	fx.Provide(service.New),
)
