//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/panchang-api/internal/bootstrap"
	"github.com/yanqian/panchang-api/internal/domain/chaughadiya"
	"github.com/yanqian/panchang-api/internal/domain/tithi"
	"github.com/yanqian/panchang-api/internal/infra/config"
	"github.com/yanqian/panchang-api/internal/infra/ephemeris"
	"github.com/yanqian/panchang-api/internal/infra/keepalive"
	"github.com/yanqian/panchang-api/internal/infra/sun"
	httpiface "github.com/yanqian/panchang-api/internal/interface/http"
	"github.com/yanqian/panchang-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		sun.NewProvider,
		ephemeris.NewProvider,
		provideTithiStore,
		chaughadiya.NewEngine,
		chaughadiya.NewService,
		tithi.NewEngine,
		tithi.NewService,
		keepalive.New,
		wire.Bind(new(chaughadiya.SunEvents), new(*sun.Provider)),
		wire.Bind(new(tithi.Ephemeris), new(*ephemeris.Provider)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
