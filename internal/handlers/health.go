package handlers

import (
	"context"
	"net/http"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/response"
)

type AdminService interface {
	Ping(ctx context.Context) (dto.PingResult, error)
}

type healthHandlers struct {
	ResponseHandler response.ResponseHandler
	AdminSvc        AdminService
}

func NewHealthHandlers(deps *Deps) *healthHandlers {
	return &healthHandlers{
		ResponseHandler: deps.ResponseHandler,
		AdminSvc:        deps.AdminSvc,
	}
}

// Health answers 503 when the data source is unreachable.
func (h *healthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	result, err := h.AdminSvc.Ping(r.Context())
	if err != nil {
		h.ResponseHandler.WriteError(w, r, http.StatusServiceUnavailable, "service_unavailable",
			"data source "+result.DataSource+" is unreachable")
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
