package contact

import (
	"fmt"
	"net/http"
	"net/url"

	"daawat/config"
	"daawat/infras/otel"
	"daawat/shared/constant"
	"daawat/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Handler {
	return Handler{
		config: config,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetContactLinks)
	})
}

// ContactLinksResponse carries the fixed outbound destinations: phone
// dialing, email composition, a prefilled WhatsApp deep link and the
// Instagram profile.
type ContactLinksResponse struct {
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
}

// GetContactLinks returns the outbound contact destinations.
// @Summary Get contact links
// @Description Retrieve the restaurant's fixed contact destinations as ready-to-use links.
// @Tags Contact
// @Produce json
// @Success 200 {object} response.Data[ContactLinksResponse] "Contact links"
// @Router /v1/contact [get]
func (handler *Handler) GetContactLinks(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactLinks")
	defer scope.End()

	restaurant := handler.config.Restaurant

	res := ContactLinksResponse{
		Phone:     "tel:" + restaurant.Phone,
		Email:     "mailto:" + restaurant.Email,
		WhatsApp:  fmt.Sprintf("https://wa.me/%s?text=%s", restaurant.WhatsAppNumber, url.QueryEscape(restaurant.WhatsAppMessage)),
		Instagram: "https://instagram.com/" + restaurant.InstagramHandle,
	}

	response.WithJSON(writer, http.StatusOK, res)
}
