package service

import (
	"context"

	"daawat/config"
	"daawat/infras/otel"
	"daawat/internal/domains/review/model"
	"daawat/internal/domains/review/model/dto"
	"daawat/internal/domains/review/repository"
	"daawat/shared/cache"
	"daawat/shared/constant"
	gDto "daawat/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheFeaturedReviews = "review:featured"

	featuredLimit = 6
)

type Review interface {
	Featured(ctx context.Context) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo  repository.Review
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Review, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Featured returns the six most recent featured testimonials with their
// mean rating. Reviews are not translated, so the response is the same for
// either language and keyed once in cache.
func (s *serviceImpl) Featured(ctx context.Context) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Featured")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheFeaturedReviews, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheFeaturedReviews).Msg("cache hit for featured reviews")

		return res, nil
	}

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldIsFeatured, true))

	reviews, err := s.repo.GetAll(ctx, gDto.OrderByWithLimit(model.FieldCreatedAt, gDto.SortDirDesc, featuredLimit), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured reviews")

		return res, err
	}

	res.FromModels(reviews)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheFeaturedReviews, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured reviews to cache")
		}
	}()

	return res, nil
}
