//go:build wireinject
// +build wireinject

package di

import (
	"profmeet/config"
	"profmeet/infras/googleoauth"
	"profmeet/infras/jwt"
	"profmeet/infras/otel"
	"profmeet/infras/postgres"
	"profmeet/infras/redis"
	"profmeet/shared/cache"
	"profmeet/transport/http"
	"profmeet/transport/http/middleware"
	"profmeet/transport/http/router"

	"profmeet/internal/clients/calendarclient"
	"profmeet/internal/clients/directory"
	"profmeet/internal/clients/notification"

	bookingRepository "profmeet/internal/domains/booking/repository"
	bookingService "profmeet/internal/domains/booking/service"
	"profmeet/internal/domains/calendar/credential"
	calendarRepository "profmeet/internal/domains/calendar/repository"
	calendarService "profmeet/internal/domains/calendar/service"

	bookingHandler "profmeet/internal/handlers/booking"
	calendarHandler "profmeet/internal/handlers/calendar"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	googleoauth.NewConfig,
	googleoauth.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var externalClients = wire.NewSet(
	directory.New,
	notification.New,
	calendarclient.New,
)

var calendarDomain = wire.NewSet(
	calendarRepository.New,
	credential.NewClock,
	credential.New,
	calendarService.NewDefaultFactory,
	calendarService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	calendarDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	calendarHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		externalClients,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
