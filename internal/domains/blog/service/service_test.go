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
	blogMocks "daawat/internal/domains/blog/mocks"
	"daawat/internal/domains/blog/model"
	"daawat/internal/domains/blog/service"
	cacheMocks "daawat/shared/cache/mocks"
	gDto "daawat/shared/dto"
	"daawat/shared/i18n"
)

func fixturePosts() []model.BlogPost {
	return []model.BlogPost{
		{
			ID:          "1",
			Title:       "The Story of Our Dal Makhani",
			TitleHi:     "हमारी दाल मखनी की कहानी",
			Author:      "Kuldeep Singh",
			PublishedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "A Night in Old Delhi",
			Author:      "Kuldeep Singh",
			PublishedAt: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestBlogService_Latest(t *testing.T) {
	tests := []struct {
		name       string
		lang       i18n.Language
		setupMock  func(repo *blogMocks.MockBlog, redis *cacheMocks.MockRedisCache)
		wantErr    bool
		wantTitles []string
	}{
		{
			name: "latest two posts newest first",
			lang: i18n.English,
			setupMock: func(repo *blogMocks.MockBlog, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gDto.OrderByWithLimit(model.FieldPublishedAt, gDto.SortDirDesc, 2), gomock.Any()).
					Return(fixturePosts(), nil)

				redis.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTitles: []string{"The Story of Our Dal Makhani", "A Night in Old Delhi"},
		},
		{
			name: "hindi localizes with fallback",
			lang: i18n.Hindi,
			setupMock: func(repo *blogMocks.MockBlog, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fixturePosts(), nil)

				redis.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTitles: []string{"हमारी दाल मखनी की कहानी", "A Night in Old Delhi"},
		},
		{
			name: "repository error",
			lang: i18n.English,
			setupMock: func(repo *blogMocks.MockBlog, redis *cacheMocks.MockRedisCache) {
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

			mockRepo := blogMocks.NewMockBlog(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockOtel := mocks.NewOtel()

			cfg := &config.Config{}
			cfg.Cache.TTL = 3600

			svc := service.New(mockRepo, cfg, mockCache, mockOtel)

			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Latest(context.Background(), tt.lang)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			titles := make([]string, len(res.Posts))
			for i, post := range res.Posts {
				titles[i] = post.Title
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}
