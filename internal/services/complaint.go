package services

import (
	"context"
	"strings"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/errs"
	"github.com/grupo1/reclamos-backend/internal/models"
	"github.com/grupo1/reclamos-backend/pkg/logger"
)

type complaintStore interface {
	List(ctx context.Context, q dto.ComplaintQuery, handle func(*models.Complaint) error) error
	Get(ctx context.Context, id string) (*models.Complaint, error)
}

type complaintService struct {
	store complaintStore
}

func NewComplaintService(store complaintStore) *complaintService {
	return &complaintService{store: store}
}

// List returns complaints newest first. A store failure degrades to an empty
// listing instead of an error; an unknown status filter is rejected.
func (s *complaintService) List(ctx context.Context, q dto.ComplaintQuery) (dto.ComplaintListResponse, error) {
	log := logger.FromContext(ctx)

	if q.Status != nil {
		status := strings.TrimSpace(*q.Status)
		if !models.ValidStatus(status) {
			return dto.ComplaintListResponse{}, errs.NewValidationError("unknown estado: " + *q.Status)
		}
		q.Status = &status
	}

	items := []dto.ComplaintItem{}
	var summary dto.StatusSummary
	err := s.store.List(ctx, q, func(c *models.Complaint) error {
		items = append(items, dto.ComplaintItem{
			Complaint:   *c,
			StatusLabel: models.StatusLabel(c.Status),
		})
		tally(&summary, c.Status)
		return nil
	})
	if err != nil {
		log.Error("failed to list complaints", "error", err)
		return dto.ComplaintListResponse{
			Complaints: []dto.ComplaintItem{},
			Degraded:   true,
		}, nil
	}

	log.Info("complaints listed", "count", len(items))
	return dto.ComplaintListResponse{
		Summary:    summary,
		Complaints: items,
	}, nil
}

func (s *complaintService) Get(ctx context.Context, id string) (dto.ComplaintItem, error) {
	if strings.TrimSpace(id) == "" {
		return dto.ComplaintItem{}, errs.NewValidationError("id is required")
	}
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return dto.ComplaintItem{}, err
	}
	return dto.ComplaintItem{
		Complaint:   *c,
		StatusLabel: models.StatusLabel(c.Status),
	}, nil
}

func tally(s *dto.StatusSummary, status string) {
	s.Total++
	switch status {
	case models.StatusPending:
		s.Pending++
	case models.StatusInProgress:
		s.InProgress++
	case models.StatusResolved:
		s.Resolved++
	}
}
