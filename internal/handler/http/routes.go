package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	// clients use the trailing-slash URL style, so /api/menu/ and /api/menu
	// must route identically
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes with token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/menu", func(r chi.Router) {
			r.Get("/", h.listMenuItems)
			r.Post("/", h.createMenuItem)
			r.Get("/{id}", h.getMenuItem)
			r.Put("/{id}", h.updateMenuItem)
			r.Delete("/{id}", h.deleteMenuItem)
		})

		r.Route("/api/bookings", func(r chi.Router) {
			r.Get("/", h.listBookings)
			r.Post("/", h.createBooking)
			r.Get("/{id}", h.getBooking)
			r.Put("/{id}", h.updateBooking)
			r.Delete("/{id}", h.deleteBooking)
		})
	})

	return router
}
