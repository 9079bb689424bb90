package service

import (
	"context"

	"daawat/config"
	"daawat/infras/otel"
	"daawat/internal/domains/blog/model"
	"daawat/internal/domains/blog/model/dto"
	"daawat/internal/domains/blog/repository"
	"daawat/shared"
	"daawat/shared/cache"
	"daawat/shared/constant"
	gDto "daawat/shared/dto"
	"daawat/shared/i18n"

	"github.com/rs/zerolog/log"
)

const (
	cacheLatestPosts = "blog:latest"

	latestLimit = 2
)

type Blog interface {
	Latest(ctx context.Context, lang i18n.Language) (dto.GetBlogPostsResponse, error)
}

type serviceImpl struct {
	repo  repository.Blog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Blog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Blog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Latest returns the two most recently published posts localized to lang.
func (s *serviceImpl) Latest(ctx context.Context, lang i18n.Language) (res dto.GetBlogPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Latest")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheLatestPosts, string(lang))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for latest blog posts")

		return res, nil
	}

	posts, err := s.repo.GetAll(ctx, gDto.OrderByWithLimit(model.FieldPublishedAt, gDto.SortDirDesc, latestLimit), gDto.And())
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest blog posts")

		return res, err
	}

	res.FromModels(posts, lang)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save latest blog posts to cache")
		}
	}()

	return res, nil
}
