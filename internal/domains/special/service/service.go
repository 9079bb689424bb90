package service

import (
	"context"
	"strconv"

	"daawat/config"
	"daawat/infras/otel"
	"daawat/internal/domains/special/model"
	"daawat/internal/domains/special/model/dto"
	"daawat/internal/domains/special/repository"
	"daawat/shared"
	"daawat/shared/cache"
	"daawat/shared/constant"
	gDto "daawat/shared/dto"
	"daawat/shared/failure"
	"daawat/shared/i18n"
	"daawat/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheTodaySpecial = "special:today"
)

type ChefSpecial interface {
	Today(ctx context.Context, lang i18n.Language) (dto.ChefSpecialResponse, error)
}

type serviceImpl struct {
	repo  repository.ChefSpecial
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.ChefSpecial, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) ChefSpecial {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Today returns the active special scheduled for today's weekday in the
// restaurant timezone. A weekday with no active row is reported as a
// not-found failure, which the handler translates into an empty section
// rather than an error page.
func (s *serviceImpl) Today(ctx context.Context, lang i18n.Language) (res dto.ChefSpecialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Today")
	defer scope.End()

	weekday := timezone.Weekday()
	cacheKey := shared.BuildCacheKey(cacheTodaySpecial, strconv.Itoa(weekday), string(lang))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for today's special")

		return res, nil
	}

	filter := gDto.And(
		gDto.Eq(model.TableName, model.FieldDayOfWeek, weekday),
		gDto.Eq(model.TableName, model.FieldIsActive, true),
	)

	special, err := s.repo.Get(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today's special")

		return res, err
	}

	if special.ID == constant.Empty {
		return res, failure.NotFound("no chef special scheduled today")
	}

	res.FromModel(special, lang)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save today's special to cache")
		}
	}()

	return res, nil
}
