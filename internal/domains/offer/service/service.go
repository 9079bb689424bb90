package service

import (
	"context"

	"daawat/config"
	"daawat/infras/otel"
	"daawat/internal/domains/offer/model/dto"
	"daawat/shared"
	"daawat/shared/cache"
	"daawat/shared/constant"
	"daawat/shared/i18n"
)

const (
	cacheWelcomeSeen = "offer:welcome_seen"

	seenFlag = "1"
)

type Offer interface {
	Welcome(ctx context.Context, lang i18n.Language, visitorID string) (dto.WelcomeOfferResponse, error)
	Dismiss(ctx context.Context, visitorID string) (dto.DismissOfferResponse, error)
}

type serviceImpl struct {
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Offer {
	return &serviceImpl{
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Welcome returns the configured first-visit offer with the visitor's seen
// flag. A missing flag means the popup has never been dismissed for this
// visitor profile.
func (s *serviceImpl) Welcome(ctx context.Context, lang i18n.Language, visitorID string) (res dto.WelcomeOfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Welcome")
	defer scope.End()

	res.Title = i18n.T(lang, "Welcome to Daawat-e-Kuldeep!", "दावत-ए-कुलदीप में आपका स्वागत है!")
	res.Description = i18n.T(lang,
		"Enjoy 10% off your first order above the minimum amount.",
		"न्यूनतम राशि से ऊपर अपने पहले ऑर्डर पर 10% छूट पाएं।",
	)
	res.Code = s.cfg.Offer.Code
	res.MinOrder = s.cfg.Offer.MinOrder
	res.PopupDelaySec = s.cfg.Offer.PopupDelaySec

	var flag string

	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheWelcomeSeen, visitorID), &flag)
	if err == nil && flag == seenFlag {
		res.Seen = true
	}

	return res, nil
}

// Dismiss marks the popup seen for the visitor. The flag never expires, so
// one dismissal hides the popup for that visitor profile permanently.
func (s *serviceImpl) Dismiss(ctx context.Context, visitorID string) (res dto.DismissOfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dismiss")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Save(ctx, shared.BuildCacheKey(cacheWelcomeSeen, visitorID), seenFlag, cache.NoExpiry); err != nil {
		return res, err
	}

	res.Seen = true

	return res, nil
}
