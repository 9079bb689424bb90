package offer

import (
	"net/http"

	"daawat/infras/otel"
	"daawat/internal/domains/offer/service"
	"daawat/shared/constant"
	"daawat/shared/failure"
	"daawat/shared/i18n"
	"daawat/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Offer
	otel    otel.Otel
}

func New(service service.Offer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/offers/welcome", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWelcomeOffer)
		routerGroup.Post("/dismiss", handler.DismissWelcomeOffer)
	})
}

// GetWelcomeOffer returns the first-visit popup payload.
// @Summary Get the welcome offer
// @Description Retrieve the welcome offer with the calling visitor's seen flag. Visitors are identified by the X-Visitor-ID header.
// @Tags Offer
// @Produce json
// @Param X-Visitor-ID header string true "Visitor identifier"
// @Param lang query string false "Display language (en, hi)"
// @Success 200 {object} response.Data[dto.WelcomeOfferResponse] "The welcome offer"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offers/welcome [get]
func (handler *Handler) GetWelcomeOffer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWelcomeOffer")
	defer scope.End()

	visitorID := request.Header.Get(constant.RequestHeaderVisitorID)
	if visitorID == "" {
		response.WithError(writer, failure.BadRequestFromString("missing visitor id"))

		return
	}

	res, err := handler.service.Welcome(ctx, i18n.FromContext(ctx), visitorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get welcome offer")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DismissWelcomeOffer marks the popup seen for the visitor.
// @Summary Dismiss the welcome offer
// @Description Set the visitor's seen flag. Once set the popup never reappears for that visitor.
// @Tags Offer
// @Produce json
// @Param X-Visitor-ID header string true "Visitor identifier"
// @Success 200 {object} response.Data[dto.DismissOfferResponse] "Flag set"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offers/welcome/dismiss [post]
func (handler *Handler) DismissWelcomeOffer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DismissWelcomeOffer")
	defer scope.End()

	visitorID := request.Header.Get(constant.RequestHeaderVisitorID)
	if visitorID == "" {
		response.WithError(writer, failure.BadRequestFromString("missing visitor id"))

		return
	}

	res, err := handler.service.Dismiss(ctx, visitorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to dismiss welcome offer")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
