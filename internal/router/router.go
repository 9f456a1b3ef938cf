package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/grupo1/reclamos-backend/internal/handlers"
	"github.com/grupo1/reclamos-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	hh := handlers.NewHealthHandlers(deps)
	dh := handlers.NewDashboardHandlers(deps)
	ch := handlers.NewComplaintHandlers(deps)

	r.Get("/health", hh.Health)
	r.Mount("/dashboard", dh.DashboardRoutes())
	r.Mount("/reclamos", ch.ComplaintRoutes())
	return r
}
