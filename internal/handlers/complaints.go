package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/response"
)

type ComplaintService interface {
	List(ctx context.Context, q dto.ComplaintQuery) (dto.ComplaintListResponse, error)
	Get(ctx context.Context, id string) (dto.ComplaintItem, error)
}

type complaintHandlers struct {
	ResponseHandler response.ResponseHandler
	ComplaintSvc    ComplaintService
}

func NewComplaintHandlers(deps *Deps) *complaintHandlers {
	return &complaintHandlers{
		ResponseHandler: deps.ResponseHandler,
		ComplaintSvc:    deps.ComplaintSvc,
	}
}

func (h *complaintHandlers) ComplaintRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListComplaints)
	r.Get("/{id}", h.GetComplaint)
	return r
}

func (h *complaintHandlers) ListComplaints(w http.ResponseWriter, r *http.Request) {
	var q dto.ComplaintQuery
	if values := r.URL.Query(); values.Has("estado") {
		status := values.Get("estado")
		q.Status = &status
	}

	resp, err := h.ComplaintSvc.List(r.Context(), q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *complaintHandlers) GetComplaint(w http.ResponseWriter, r *http.Request) {
	item, err := h.ComplaintSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, item)
}
