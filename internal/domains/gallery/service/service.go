package service

import (
	"context"

	"daawat/config"
	"daawat/infras/otel"
	"daawat/internal/domains/gallery/model"
	"daawat/internal/domains/gallery/model/dto"
	"daawat/internal/domains/gallery/repository"
	"daawat/shared/cache"
	"daawat/shared/constant"
	gDto "daawat/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheFeaturedPhotos = "gallery:featured"
)

type Gallery interface {
	Featured(ctx context.Context) (dto.GetGalleryResponse, error)
}

type serviceImpl struct {
	repo  repository.Gallery
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Gallery {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Featured returns featured gallery photos, newest first. Captions carry no
// translation, so the response is language-independent.
func (s *serviceImpl) Featured(ctx context.Context) (res dto.GetGalleryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Featured")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheFeaturedPhotos, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheFeaturedPhotos).Msg("cache hit for featured gallery photos")

		return res, nil
	}

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldIsFeatured, true))

	photos, err := s.repo.GetAll(ctx, gDto.OrderBy(model.FieldCreatedAt, gDto.SortDirDesc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured gallery photos")

		return res, err
	}

	res.FromModels(photos)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheFeaturedPhotos, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured gallery photos to cache")
		}
	}()

	return res, nil
}
