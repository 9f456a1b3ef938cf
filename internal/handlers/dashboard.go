package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/response"
)

type DashboardService interface {
	GetStats(ctx context.Context) dto.DashboardStats
	GetActivity(ctx context.Context, rangeParam string) (dto.ActivityChart, error)
}

type dashboardHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}

func NewDashboardHandlers(deps *Deps) *dashboardHandlers {
	return &dashboardHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
	}
}

func (h *dashboardHandlers) DashboardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetStats)
	r.Get("/activity", h.GetActivity)
	return r
}

func (h *dashboardHandlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.DashboardSvc.GetStats(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, stats)
}

// GetActivity serves the chart for ?range=7days|30days|3months (default 7days).
func (h *dashboardHandlers) GetActivity(w http.ResponseWriter, r *http.Request) {
	chart, err := h.DashboardSvc.GetActivity(r.Context(), r.URL.Query().Get("range"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, chart)
}
