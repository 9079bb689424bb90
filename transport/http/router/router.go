package router

import (
	"daawat/internal/handlers/blog"
	"daawat/internal/handlers/contact"
	"daawat/internal/handlers/event"
	"daawat/internal/handlers/gallery"
	"daawat/internal/handlers/menu"
	"daawat/internal/handlers/offer"
	"daawat/internal/handlers/reservation"
	"daawat/internal/handlers/review"
	"daawat/internal/handlers/special"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Menu        menu.Handler
	Special     special.Handler
	Event       event.Handler
	Review      review.Handler
	Blog        blog.Handler
	Gallery     gallery.Handler
	Reservation reservation.Handler
	Offer       offer.Handler
	Contact     contact.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Special.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Blog.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Offer.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
