//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"catchlog/internal"
	"catchlog/internal/controllers"
	"catchlog/internal/persistence"
	"catchlog/internal/providers"
	"catchlog/internal/services"
	"catchlog/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		persistence.NewZstdCompressor,
		services.NewCatchService,
		persistence.NewFileManager,
		persistence.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
