package menu

import (
	"net/http"

	"daawat/infras/otel"
	"daawat/internal/domains/menu/model"
	"daawat/internal/domains/menu/service"
	"daawat/shared"
	"daawat/shared/constant"
	"daawat/shared/i18n"
	"daawat/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMenu)
	})
}

// GetMenu lists the available dishes.
// @Summary Get the menu
// @Description Retrieve available dishes, optionally narrowed by category and a vegetarian-only filter. Content is localized by the lang query parameter or Accept-Language.
// @Tags Menu
// @Produce json
// @Param category query string false "Category filter (all, appetizer, main_course, breads, dessert, beverages)"
// @Param veg_only query bool false "Only vegetarian dishes"
// @Param lang query string false "Display language (en, hi)"
// @Success 200 {object} response.Data[dto.GetMenuResponse] "The menu"
// @Failure 500 {object} response.Error
// @Router /v1/menu [get]
func (handler *Handler) GetMenu(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenu")
	defer scope.End()

	category := request.URL.Query().Get(constant.RequestParamCategory)
	if category == "" {
		category = model.CategoryAll
	}

	vegOnly := false
	if value := shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamVegOnly)); value != nil {
		vegOnly = *value
	}

	res, err := handler.service.List(ctx, i18n.FromContext(ctx), category, vegOnly)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
