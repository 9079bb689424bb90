package service

import (
	"context"

	"daawat/config"
	"daawat/infras/otel"
	"daawat/internal/domains/menu/model"
	"daawat/internal/domains/menu/model/dto"
	"daawat/internal/domains/menu/repository"
	"daawat/shared/cache"
	"daawat/shared/constant"
	gDto "daawat/shared/dto"
	"daawat/shared/i18n"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllMenu = "menu:get_all"
)

type Menu interface {
	List(ctx context.Context, lang i18n.Language, category string, vegOnly bool) (dto.GetMenuResponse, error)
}

type serviceImpl struct {
	repo  repository.Menu
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Menu, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Menu {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// List returns available dishes localized to lang, narrowed by the two
// composable display filters. The full available set is what gets cached;
// filtering happens on the fetched copy, so an empty filtered result is an
// ordinary response, not a fetch failure.
func (s *serviceImpl) List(ctx context.Context, lang i18n.Language, category string, vegOnly bool) (res dto.GetMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	items, err := s.availableItems(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, err
	}

	res.FromModels(FilterItems(items, category, vegOnly), lang)

	return res, nil
}

func (s *serviceImpl) availableItems(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem

	err := s.cache.Get(ctx, cacheGetAllMenu, &items)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllMenu).Msg("cache hit for menu items")

		return items, nil
	}

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldIsAvailable, true))

	items, err = s.repo.GetAll(ctx, gDto.OrderBy(model.FieldCategory, gDto.SortDirAsc), filter)
	if err != nil {
		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllMenu, items, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu items to cache")
		}
	}()

	return items, nil
}

// FilterItems applies the category and veg-only display filters, ANDed.
// CategoryAll (or an empty category) passes every category through. The
// function is pure: applying the same filters twice yields the same set.
func FilterItems(items []model.MenuItem, category string, vegOnly bool) []model.MenuItem {
	filtered := make([]model.MenuItem, 0, len(items))

	for _, item := range items {
		if category != "" && category != model.CategoryAll && item.Category != category {
			continue
		}

		if vegOnly && !item.IsVeg {
			continue
		}

		filtered = append(filtered, item)
	}

	return filtered
}
