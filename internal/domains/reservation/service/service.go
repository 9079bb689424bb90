package service

import (
	"context"

	"daawat/config"
	"daawat/infras/kafka"
	"daawat/infras/otel"
	"daawat/internal/domains/reservation/model/dto"
	"daawat/internal/domains/reservation/repository"
	"daawat/shared/constant"
	"daawat/shared/i18n"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Create(ctx context.Context, lang i18n.Language, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
}

type serviceImpl struct {
	repo  repository.Reservation
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Reservation, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

// Create persists the booking with exactly one insert attempt. There is no
// idempotency key, so a client retry after a transient failure can create a
// duplicate row; the back office dedupes while confirming. The created event
// is published after the insert and never affects the submission outcome.
func (s *serviceImpl) Create(ctx context.Context, lang i18n.Language, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to build reservation from request")

		return res, err
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert reservation")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		var event dto.ReservationCreatedEvent
		event.FromModel(reservation)

		message := kafka.Message{
			Key:   reservation.ID,
			Value: event,
		}

		if err := s.kafka.SendMessages(c, constant.KafkaTopicReservationCreated, message); err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to publish reservation created event")
		}
	}()

	res.Message = i18n.T(lang,
		"Reservation received. We will confirm shortly.",
		"आरक्षण प्राप्त हुआ। हम जल्द ही पुष्टि करेंगे।",
	)

	return res, nil
}
