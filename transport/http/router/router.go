package router

import (
	"github.com/go-chi/chi/v5"

	"profmeet/internal/handlers/booking"
	"profmeet/internal/handlers/calendar"
)

type DomainHandlers struct {
	Booking  booking.Handler
	Calendar calendar.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
