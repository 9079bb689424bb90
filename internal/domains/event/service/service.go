package service

import (
	"context"

	"daawat/config"
	"daawat/infras/otel"
	"daawat/internal/domains/event/model"
	"daawat/internal/domains/event/model/dto"
	"daawat/internal/domains/event/repository"
	"daawat/shared"
	"daawat/shared/cache"
	"daawat/shared/constant"
	gDto "daawat/shared/dto"
	"daawat/shared/i18n"

	"github.com/rs/zerolog/log"
)

const (
	cacheUpcomingEvents = "event:upcoming"
)

type Event interface {
	Upcoming(ctx context.Context, lang i18n.Language) (dto.GetEventsResponse, error)
}

type serviceImpl struct {
	repo  repository.Event
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Event {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Upcoming returns active events localized to lang, soonest first.
func (s *serviceImpl) Upcoming(ctx context.Context, lang i18n.Language) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upcoming")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheUpcomingEvents, string(lang))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for upcoming events")

		return res, nil
	}

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldIsActive, true))

	events, err := s.repo.GetAll(ctx, gDto.OrderBy(model.FieldEventDate, gDto.SortDirAsc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming events")

		return res, err
	}

	res.FromModels(events, lang)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save upcoming events to cache")
		}
	}()

	return res, nil
}
