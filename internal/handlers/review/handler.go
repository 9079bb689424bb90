package review

import (
	"net/http"

	"daawat/infras/otel"
	"daawat/internal/domains/review/service"
	"daawat/shared/constant"
	"daawat/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/featured", handler.GetFeaturedReviews)
	})
}

// GetFeaturedReviews lists the featured testimonials.
// @Summary Get featured reviews
// @Description Retrieve the six most recent featured reviews with their average rating.
// @Tags Review
// @Produce json
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "Featured reviews"
// @Failure 500 {object} response.Error
// @Router /v1/reviews/featured [get]
func (handler *Handler) GetFeaturedReviews(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedReviews")
	defer scope.End()

	res, err := handler.service.Featured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured reviews")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
