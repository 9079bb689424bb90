//go:build wireinject
// +build wireinject

package di

import (
	"daawat/config"
	"daawat/infras/kafka"
	"daawat/infras/otel"
	"daawat/infras/postgres"
	"daawat/infras/redis"
	"daawat/shared/cache"
	"daawat/transport/http"
	"daawat/transport/http/middleware"
	"daawat/transport/http/router"

	blogRepository "daawat/internal/domains/blog/repository"
	blogService "daawat/internal/domains/blog/service"
	eventRepository "daawat/internal/domains/event/repository"
	eventService "daawat/internal/domains/event/service"
	galleryRepository "daawat/internal/domains/gallery/repository"
	galleryService "daawat/internal/domains/gallery/service"
	menuRepository "daawat/internal/domains/menu/repository"
	menuService "daawat/internal/domains/menu/service"
	offerService "daawat/internal/domains/offer/service"
	reservationRepository "daawat/internal/domains/reservation/repository"
	reservationService "daawat/internal/domains/reservation/service"
	reviewRepository "daawat/internal/domains/review/repository"
	reviewService "daawat/internal/domains/review/service"
	specialRepository "daawat/internal/domains/special/repository"
	specialService "daawat/internal/domains/special/service"

	blogHandler "daawat/internal/handlers/blog"
	contactHandler "daawat/internal/handlers/contact"
	eventHandler "daawat/internal/handlers/event"
	galleryHandler "daawat/internal/handlers/gallery"
	menuHandler "daawat/internal/handlers/menu"
	offerHandler "daawat/internal/handlers/offer"
	reservationHandler "daawat/internal/handlers/reservation"
	reviewHandler "daawat/internal/handlers/review"
	specialHandler "daawat/internal/handlers/special"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var specialDomain = wire.NewSet(
	specialRepository.New,
	specialService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var blogDomain = wire.NewSet(
	blogRepository.New,
	blogService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var offerDomain = wire.NewSet(
	offerService.New,
)

var domains = wire.NewSet(
	menuDomain,
	specialDomain,
	eventDomain,
	reviewDomain,
	blogDomain,
	galleryDomain,
	reservationDomain,
	offerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	menuHandler.New,
	specialHandler.New,
	eventHandler.New,
	reviewHandler.New,
	blogHandler.New,
	galleryHandler.New,
	reservationHandler.New,
	offerHandler.New,
	contactHandler.New,
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
