package blog

import (
	"net/http"

	"daawat/infras/otel"
	"daawat/internal/domains/blog/service"
	"daawat/shared/constant"
	"daawat/shared/i18n"
	"daawat/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Blog
	otel    otel.Otel
}

func New(service service.Blog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blog", func(routerGroup chi.Router) {
		routerGroup.Get("/latest", handler.GetLatestPosts)
	})
}

// GetLatestPosts lists the most recent blog posts.
// @Summary Get latest blog posts
// @Description Retrieve the two most recently published posts.
// @Tags Blog
// @Produce json
// @Param lang query string false "Display language (en, hi)"
// @Success 200 {object} response.Data[dto.GetBlogPostsResponse] "Latest posts"
// @Failure 500 {object} response.Error
// @Router /v1/blog/latest [get]
func (handler *Handler) GetLatestPosts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLatestPosts")
	defer scope.End()

	res, err := handler.service.Latest(ctx, i18n.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get latest blog posts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
