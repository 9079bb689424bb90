package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"daawat/config"
	"daawat/infras/otel/mocks"
	galleryMocks "daawat/internal/domains/gallery/mocks"
	"daawat/internal/domains/gallery/model"
	"daawat/internal/domains/gallery/service"
	cacheMocks "daawat/shared/cache/mocks"
)

func fixturePhotos() []model.GalleryPhoto {
	return []model.GalleryPhoto{
		{
			ID:              "1",
			ImageURL:        "https://cdn.example.com/gallery/thali.jpg",
			Caption:         "Festive thali night",
			CustomerName:    "Asha Verma",
			InstagramHandle: sql.NullString{String: "asha.eats", Valid: true},
			IsFeatured:      true,
		},
		{
			ID:           "2",
			ImageURL:     "https://cdn.example.com/gallery/tandoor.jpg",
			Caption:      "Fresh from the tandoor",
			CustomerName: "Rohan Mehta",
			IsFeatured:   true,
		},
	}
}

func TestGalleryService_Featured(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *galleryMocks.MockGallery, redis *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "featured photos",
			setupMock: func(repo *galleryMocks.MockGallery, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fixturePhotos(), nil)

				redis.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 2,
		},
		{
			name: "empty gallery is valid",
			setupMock: func(repo *galleryMocks.MockGallery, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.GalleryPhoto{}, nil)

				redis.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 0,
		},
		{
			name: "repository error",
			setupMock: func(repo *galleryMocks.MockGallery, redis *cacheMocks.MockRedisCache) {
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

			mockRepo := galleryMocks.NewMockGallery(ctrl)
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

			if res.Total > 0 {
				assert.Equal(t, "asha.eats", res.Photos[0].InstagramHandle)
				assert.Empty(t, res.Photos[1].InstagramHandle)
			}
		})
	}
}
