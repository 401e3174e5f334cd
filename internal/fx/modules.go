package fx

import (
	"sleeper-history/internal/api"
	"sleeper-history/internal/config"
	"sleeper-history/internal/logger"
	"sleeper-history/internal/server"
	"sleeper-history/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api client
	fx.Provide(fx.Annotate(api.NewSleeperClient, fx.As(new(service.SleeperAPI)))),
	// svc
	fx.Provide(service.NewCompareService),
	fx.Provide(service.NewTeamService),
	// server
	fx.Provide(server.NewHistoryServer),
)
