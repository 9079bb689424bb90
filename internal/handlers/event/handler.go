package event

import (
	"net/http"

	"daawat/infras/otel"
	"daawat/internal/domains/event/service"
	"daawat/shared/constant"
	"daawat/shared/i18n"
	"daawat/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUpcomingEvents)
	})
}

// GetUpcomingEvents lists active events, soonest first.
// @Summary Get upcoming events
// @Description Retrieve active dining events ordered by event date.
// @Tags Event
// @Produce json
// @Param lang query string false "Display language (en, hi)"
// @Success 200 {object} response.Data[dto.GetEventsResponse] "Upcoming events"
// @Failure 500 {object} response.Error
// @Router /v1/events [get]
func (handler *Handler) GetUpcomingEvents(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcomingEvents")
	defer scope.End()

	res, err := handler.service.Upcoming(ctx, i18n.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming events")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
