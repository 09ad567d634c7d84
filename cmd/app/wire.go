//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/itinerary-roaster/internal/bootstrap"
	"github.com/yanqian/itinerary-roaster/internal/domain/persona"
	"github.com/yanqian/itinerary-roaster/internal/domain/roast"
	"github.com/yanqian/itinerary-roaster/internal/infra/config"
	"github.com/yanqian/itinerary-roaster/internal/infra/sheets"
	httpiface "github.com/yanqian/itinerary-roaster/internal/interface/http"
	"github.com/yanqian/itinerary-roaster/pkg/logger"
	"github.com/yanqian/itinerary-roaster/pkg/metrics"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		persona.NewDefaultCatalog,
		provideRoastConfig,
		provideCompleter,
		provideSheetClient,
		provideTokenCounter,
		providePersonaAssets,
		provideRateLimiter,
		roast.NewService,
		wire.Bind(new(roast.PersonaCatalog), new(*persona.Catalog)),
		wire.Bind(new(roast.SheetFetcher), new(*sheets.Client)),
		wire.Bind(new(roast.TokenEstimator), new(*metrics.TokenCounter)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
