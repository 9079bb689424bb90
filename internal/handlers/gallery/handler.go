package gallery

import (
	"net/http"

	"daawat/infras/otel"
	"daawat/internal/domains/gallery/service"
	"daawat/shared/constant"
	"daawat/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/featured", handler.GetFeaturedPhotos)
	})
}

// GetFeaturedPhotos lists featured gallery photos.
// @Summary Get featured gallery photos
// @Description Retrieve featured customer photos, newest first.
// @Tags Gallery
// @Produce json
// @Success 200 {object} response.Data[dto.GetGalleryResponse] "Featured photos"
// @Failure 500 {object} response.Error
// @Router /v1/gallery/featured [get]
func (handler *Handler) GetFeaturedPhotos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedPhotos")
	defer scope.End()

	res, err := handler.service.Featured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured gallery photos")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
