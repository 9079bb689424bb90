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
	eventMocks "daawat/internal/domains/event/mocks"
	"daawat/internal/domains/event/model"
	"daawat/internal/domains/event/service"
	cacheMocks "daawat/shared/cache/mocks"
	"daawat/shared/i18n"
)

func fixtureEvents() []model.Event {
	return []model.Event{
		{
			ID:             "1",
			Title:          "Ghazal Night",
			TitleHi:        "ग़ज़ल की शाम",
			EventDate:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			PricePerPerson: 1200,
			MaxCapacity:    40,
			IsActive:       true,
		},
		{
			ID:             "2",
			Title:          "Awadhi Food Festival",
			EventDate:      time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC),
			PricePerPerson: 1800,
			MaxCapacity:    60,
			IsActive:       true,
		},
	}
}

func TestEventService_Upcoming(t *testing.T) {
	tests := []struct {
		name       string
		lang       i18n.Language
		setupMock  func(repo *eventMocks.MockEvent, redis *cacheMocks.MockRedisCache)
		wantErr    bool
		wantTotal  int
		wantTitles []string
	}{
		{
			name: "active events soonest first",
			lang: i18n.English,
			setupMock: func(repo *eventMocks.MockEvent, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fixtureEvents(), nil)

				redis.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal:  2,
			wantTitles: []string{"Ghazal Night", "Awadhi Food Festival"},
		},
		{
			name: "hindi localizes translated rows and falls back otherwise",
			lang: i18n.Hindi,
			setupMock: func(repo *eventMocks.MockEvent, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fixtureEvents(), nil)

				redis.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal:  2,
			wantTitles: []string{"ग़ज़ल की शाम", "Awadhi Food Festival"},
		},
		{
			name: "no upcoming events is valid",
			lang: i18n.English,
			setupMock: func(repo *eventMocks.MockEvent, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Event{}, nil)

				redis.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal:  0,
			wantTitles: []string{},
		},
		{
			name: "repository error",
			lang: i18n.English,
			setupMock: func(repo *eventMocks.MockEvent, redis *cacheMocks.MockRedisCache) {
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

			mockRepo := eventMocks.NewMockEvent(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockOtel := mocks.NewOtel()

			cfg := &config.Config{}
			cfg.Cache.TTL = 3600

			svc := service.New(mockRepo, cfg, mockCache, mockOtel)

			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Upcoming(context.Background(), tt.lang)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total)

			titles := make([]string, len(res.Events))
			for i, ev := range res.Events {
				titles[i] = ev.Title
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}
