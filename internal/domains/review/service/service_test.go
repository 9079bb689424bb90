package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"daawat/config"
	"daawat/infras/otel/mocks"
	reviewMocks "daawat/internal/domains/review/mocks"
	"daawat/internal/domains/review/model"
	"daawat/internal/domains/review/model/dto"
	"daawat/internal/domains/review/service"
	cacheMocks "daawat/shared/cache/mocks"
)

func fixtureReviews() []model.Review {
	return []model.Review{
		{ID: "1", CustomerName: "Asha Verma", Rating: 5, Platform: model.PlatformGoogle, IsFeatured: true},
		{ID: "2", CustomerName: "Rohan Mehta", Rating: 4, Platform: model.PlatformZomato, IsFeatured: true},
		{ID: "3", CustomerName: "Meera Nair", Rating: 3, Platform: model.PlatformWebsite, IsFeatured: true},
	}
}

func TestReviewService_Featured(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *reviewMocks.MockReview, redis *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
		wantAvg   string
	}{
		{
			name: "featured reviews with mean rating",
			setupMock: func(repo *reviewMocks.MockReview, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fixtureReviews(), nil)

				redis.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 3,
			wantAvg:   "4.0",
		},
		{
			name: "empty set averages to 0.0",
			setupMock: func(repo *reviewMocks.MockReview, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Review{}, nil)

				redis.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 0,
			wantAvg:   "0.0",
		},
		{
			name: "repository error",
			setupMock: func(repo *reviewMocks.MockReview, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := reviewMocks.NewMockReview(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockOtel := mocks.NewOtel()

			cfg := &config.Config{}
			cfg.Cache.TTL = 3600

			svc := service.New(mockRepo, cfg, mockCache, mockOtel)

			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Featured(context.Background())

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, tt.wantAvg, res.AverageRating)
		})
	}
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, "0.0", dto.AverageRating(nil))
	assert.Equal(t, "4.0", dto.AverageRating([]model.Review{{Rating: 5}, {Rating: 4}, {Rating: 3}}))
	assert.Equal(t, "4.5", dto.AverageRating([]model.Review{{Rating: 5}, {Rating: 4}}))
	assert.Equal(t, "4.7", dto.AverageRating([]model.Review{{Rating: 5}, {Rating: 5}, {Rating: 4}}))
}
