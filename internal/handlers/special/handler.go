package special

import (
	"net/http"

	"daawat/infras/otel"
	"daawat/internal/domains/special/service"
	"daawat/shared/constant"
	"daawat/shared/failure"
	"daawat/shared/i18n"
	"daawat/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ChefSpecial
	otel    otel.Otel
}

func New(service service.ChefSpecial, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/specials", func(routerGroup chi.Router) {
		routerGroup.Get("/today", handler.GetTodaySpecial)
	})
}

// GetTodaySpecial returns the chef's special scheduled for today.
// @Summary Get today's chef special
// @Description Retrieve the active special for today's weekday. A day with no scheduled special responds 204 so the section can be omitted.
// @Tags ChefSpecial
// @Produce json
// @Param lang query string false "Display language (en, hi)"
// @Success 200 {object} response.Data[dto.ChefSpecialResponse] "Today's special"
// @Success 204 "No special scheduled today"
// @Failure 500 {object} response.Error
// @Router /v1/specials/today [get]
func (handler *Handler) GetTodaySpecial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodaySpecial")
	defer scope.End()

	res, err := handler.service.Today(ctx, i18n.FromContext(ctx))
	if err != nil {
		if failure.IsNotFound(err) {
			response.WithNoContent(writer)

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today's special")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
