package router

import (
	"github.com/go-chi/chi/v5"

	"flightapi/internal/handlers/flight"
	"flightapi/internal/handlers/health"
)

type DomainHandlers struct {
	Flight flight.Handler
	Health health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Flight.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
