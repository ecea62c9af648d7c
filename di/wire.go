//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"flightapi/config"
	"flightapi/infras/anthropic"
	"flightapi/infras/otel"
	"flightapi/infras/postgres"
	"flightapi/infras/redis"
	"flightapi/infras/s3"
	flightRepository "flightapi/internal/domains/flight/repository"
	flightService "flightapi/internal/domains/flight/service"
	flightHandler "flightapi/internal/handlers/flight"
	healthHandler "flightapi/internal/handlers/health"
	"flightapi/shared/cache"
	"flightapi/transport/http"
	"flightapi/transport/http/middleware"
	"flightapi/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	anthropic.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var domains = wire.NewSet(
	flightDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	flightHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
