package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"daawat/config"
	"daawat/infras/otel/mocks"
	"daawat/internal/domains/offer/service"
	cacheMocks "daawat/shared/cache/mocks"
	"daawat/shared/i18n"
)

func offerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Offer.Code = "WELCOME10"
	cfg.Offer.MinOrder = 800
	cfg.Offer.PopupDelaySec = 3

	return cfg
}

func TestOfferService_Welcome(t *testing.T) {
	t.Run("first visit is not seen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().
			Get(gomock.Any(), "offer:welcome_seen:visitor-1", gomock.Any()).
			Return(errors.New("redis: nil"))

		svc := service.New(offerConfig(), mockCache, mocks.NewOtel())

		res, err := svc.Welcome(context.Background(), i18n.English, "visitor-1")

		assert.NoError(t, err)
		assert.False(t, res.Seen)
		assert.Equal(t, "WELCOME10", res.Code)
		assert.Equal(t, 800, res.MinOrder)
		assert.Equal(t, 3, res.PopupDelaySec)
	})

	t.Run("dismissed visitor is seen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().
			Get(gomock.Any(), "offer:welcome_seen:visitor-2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				flag, _ := value.(*string)
				*flag = "1"
				return nil
			})

		svc := service.New(offerConfig(), mockCache, mocks.NewOtel())

		res, err := svc.Welcome(context.Background(), i18n.English, "visitor-2")

		assert.NoError(t, err)
		assert.True(t, res.Seen)
	})

	t.Run("hindi localizes the copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis: nil"))

		svc := service.New(offerConfig(), mockCache, mocks.NewOtel())

		res, err := svc.Welcome(context.Background(), i18n.Hindi, "visitor-3")

		assert.NoError(t, err)
		assert.Equal(t, "दावत-ए-कुलदीप में आपका स्वागत है!", res.Title)
	})
}

func TestOfferService_Dismiss(t *testing.T) {
	t.Run("sets the flag without expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().
			Save(gomock.Any(), "offer:welcome_seen:visitor-1", "1", 0).
			Return(nil)

		svc := service.New(offerConfig(), mockCache, mocks.NewOtel())

		res, err := svc.Dismiss(context.Background(), "visitor-1")

		assert.NoError(t, err)
		assert.True(t, res.Seen)
	})

	t.Run("save failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		svc := service.New(offerConfig(), mockCache, mocks.NewOtel())

		_, err := svc.Dismiss(context.Background(), "visitor-1")

		assert.Error(t, err)
	})
}
