package router

import (
	"github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/admin"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/auth"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/booking"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/catalog"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Catalog catalog.Handler
	Booking booking.Handler
	Admin   admin.Handler
	User    user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
