package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"daawat/config"
	kafkaMocks "daawat/infras/kafka/mocks"
	"daawat/infras/otel/mocks"
	reservationMocks "daawat/internal/domains/reservation/mocks"
	"daawat/internal/domains/reservation/model"
	"daawat/internal/domains/reservation/model/dto"
	"daawat/internal/domains/reservation/service"
	"daawat/shared/constant"
	"daawat/shared/i18n"
)

func fixtureRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		CustomerName:    "Asha Verma",
		CustomerEmail:   "asha@example.com",
		CustomerPhone:   "+919810000000",
		PartySize:       4,
		ReservationDate: "2026-09-12",
		ReservationTime: "19:30",
		SpecialRequests: "window table",
	}
}

func TestReservationService_Create(t *testing.T) {
	t.Run("exactly one insert per submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := reservationMocks.NewMockReservation(ctrl)
		mockKafka := kafkaMocks.NewMockClient(ctrl)
		mockOtel := mocks.NewOtel()

		req := fixtureRequest()

		var inserted model.Reservation

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
				inserted = reservation
				return nil
			}).
			Times(1)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicReservationCreated, gomock.Any()).
			Return(nil).
			AnyTimes()

		svc := service.New(mockRepo, &config.Config{}, mockKafka, mockOtel)

		res, err := svc.Create(context.Background(), i18n.English, req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.Message)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, req.CustomerName, inserted.CustomerName)
		assert.Equal(t, req.CustomerEmail, inserted.CustomerEmail)
		assert.Equal(t, req.PartySize, inserted.PartySize)
		assert.Equal(t, req.ReservationDate, inserted.ReservationDate.Format(constant.DateOnlyFormat))
		assert.Equal(t, req.ReservationTime, inserted.ReservationTime)
	})

	t.Run("publish failure does not fail the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := reservationMocks.NewMockReservation(ctrl)
		mockKafka := kafkaMocks.NewMockClient(ctrl)
		mockOtel := mocks.NewOtel()

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicReservationCreated, gomock.Any()).
			Return(errors.New("broker unavailable")).
			AnyTimes()

		svc := service.New(mockRepo, &config.Config{}, mockKafka, mockOtel)

		_, err := svc.Create(context.Background(), i18n.English, fixtureRequest())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("insert failure surfaces and publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := reservationMocks.NewMockReservation(ctrl)
		mockKafka := kafkaMocks.NewMockClient(ctrl)
		mockOtel := mocks.NewOtel()

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error")).
			Times(1)

		svc := service.New(mockRepo, &config.Config{}, mockKafka, mockOtel)

		_, err := svc.Create(context.Background(), i18n.English, fixtureRequest())

		assert.Error(t, err)
	})

	t.Run("hindi confirmation message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := reservationMocks.NewMockReservation(ctrl)
		mockKafka := kafkaMocks.NewMockClient(ctrl)
		mockOtel := mocks.NewOtel()

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		svc := service.New(mockRepo, &config.Config{}, mockKafka, mockOtel)

		res, err := svc.Create(context.Background(), i18n.Hindi, fixtureRequest())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "आरक्षण प्राप्त हुआ। हम जल्द ही पुष्टि करेंगे।", res.Message)
	})
}
