package handlers

import (
	"log/slog"

	"github.com/grupo1/reclamos-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
	ComplaintSvc    ComplaintService
	AdminSvc        AdminService
}
