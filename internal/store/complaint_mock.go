package store

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/errs"
	"github.com/grupo1/reclamos-backend/internal/models"
)

// complaintMockStore serves complaints from memory. It backs DATASOURCE=mock
// and starts with SampleData loaded.
type complaintMockStore struct {
	mu         sync.RWMutex
	complaints []models.Complaint
	nextID     int
	clockNow   func() time.Time
}

func NewComplaintMockStore() *complaintMockStore {
	s := &complaintMockStore{nextID: 1, clockNow: time.Now}
	s.load(SampleData())
	return s
}

func (s *complaintMockStore) StreamRecords(_ context.Context, handle func(*models.ComplaintRecord) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.complaints {
		r := s.complaints[i].Record()
		if err := handle(&r); err != nil {
			return err
		}
	}
	return nil
}

func (s *complaintMockStore) List(_ context.Context, q dto.ComplaintQuery, handle func(*models.Complaint) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.complaints {
		c := s.complaints[i]
		if q.Status != nil && c.Status != *q.Status {
			continue
		}
		if err := handle(&c); err != nil {
			return err
		}
	}
	return nil
}

func (s *complaintMockStore) Get(_ context.Context, id string) (*models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.complaints {
		if s.complaints[i].ID == id {
			c := s.complaints[i]
			return &c, nil
		}
	}
	return nil, errs.NewNotFoundError("complaint not found")
}

func (s *complaintMockStore) Count(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.complaints), nil
}

func (s *complaintMockStore) Ping(context.Context) (time.Time, error) {
	return s.clockNow(), nil
}

func (s *complaintMockStore) Seed(_ context.Context, data dto.SampleData) (dto.SeedResult, error) {
	if err := validateSample(data); err != nil {
		return dto.SeedResult{}, err
	}
	s.load(data)
	return dto.SeedResult{
		Categories: len(data.Categories),
		Customers:  len(data.Customers),
		Employees:  len(data.Employees),
		Complaints: len(data.Complaints),
	}, nil
}

// load appends data and keeps the slice ordered newest first by createdAt.
func (s *complaintMockStore) load(data dto.SampleData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sc := range data.Complaints {
		recordedAt := sc.RecordedAt
		createdAt := sc.RecordedAt
		c := models.Complaint{
			ID:            strconv.Itoa(s.nextID),
			CustomerName:  data.Customers[sc.Customer].FullName,
			CustomerEmail: data.Customers[sc.Customer].Email,
			Description:   sc.Description,
			Category:      data.Categories[sc.Category].Name,
			Status:        sc.Status,
			RecordedAt:    &recordedAt,
			CreatedAt:     &createdAt,
		}
		if sc.Assignee != nil {
			c.AssignedTo = data.Employees[*sc.Assignee].FullName
		}
		s.complaints = append(s.complaints, c)
		s.nextID++
	}

	slices.SortStableFunc(s.complaints, func(a, b models.Complaint) int {
		return b.CreatedAt.Compare(*a.CreatedAt)
	})
}
