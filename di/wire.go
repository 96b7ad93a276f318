//go:build wireinject
// +build wireinject

package di

import (
	"github.com/BenlahcenSoufiane/AzurHotel/config"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/jwt"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/kafka"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/postgres"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/redis"
	"github.com/BenlahcenSoufiane/AzurHotel/permissions"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/cache"
	"github.com/BenlahcenSoufiane/AzurHotel/transport/http"
	"github.com/BenlahcenSoufiane/AzurHotel/transport/http/middleware"
	"github.com/BenlahcenSoufiane/AzurHotel/transport/http/router"

	"github.com/google/wire"

	authService "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/auth/service"
	bookingRepository "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/repository"
	bookingService "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/service"
	catalogRepository "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/repository"
	catalogService "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/service"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/notification"
	userRepository "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/user/repository"
	userService "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/user/service"
	adminHandler "github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/admin"
	authHandler "github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/auth"
	bookingHandler "github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/booking"
	catalogHandler "github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/catalog"
	userHandler "github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	notification.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	catalogDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	catalogHandler.New,
	bookingHandler.New,
	adminHandler.New,
	userHandler.New,
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
