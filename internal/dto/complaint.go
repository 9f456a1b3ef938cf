package dto

import "github.com/grupo1/reclamos-backend/internal/models"

type ComplaintQuery struct {
	Status *string
}

// ComplaintItem is a complaint row decorated with its display label.
type ComplaintItem struct {
	models.Complaint
	StatusLabel string `json:"statusLabel"`
}

type StatusSummary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

type ComplaintListResponse struct {
	Summary    StatusSummary   `json:"summary"`
	Complaints []ComplaintItem `json:"complaints"`
	Degraded   bool            `json:"degraded,omitempty"`
}
