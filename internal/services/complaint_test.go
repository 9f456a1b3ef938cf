package services

import (
	"context"
	"errors"
	"testing"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/errs"
	"github.com/grupo1/reclamos-backend/internal/models"
	"github.com/grupo1/reclamos-backend/pkg/helpers"
)

type fakeComplaintStore struct {
	complaints []models.Complaint
	listErr    error
	getErr     error

	lastQuery dto.ComplaintQuery
	lastID    string
	listCalls int
}

func (f *fakeComplaintStore) List(_ context.Context, q dto.ComplaintQuery, handle func(*models.Complaint) error) error {
	f.listCalls++
	f.lastQuery = q
	if f.listErr != nil {
		return f.listErr
	}
	for i := range f.complaints {
		c := f.complaints[i]
		if q.Status != nil && c.Status != *q.Status {
			continue
		}
		if err := handle(&c); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeComplaintStore) Get(_ context.Context, id string) (*models.Complaint, error) {
	f.lastID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.complaints {
		if f.complaints[i].ID == id {
			return &f.complaints[i], nil
		}
	}
	return nil, errs.NewNotFoundError("complaint not found")
}

func sampleComplaints() []models.Complaint {
	return []models.Complaint{
		{ID: "1", CustomerName: "Juan Pérez", Status: models.StatusPending},
		{ID: "2", CustomerName: "María García", Status: models.StatusInProgress},
		{ID: "3", CustomerName: "Carlos López", Status: models.StatusResolved},
		{ID: "4", CustomerName: "Ana Martínez", Status: models.StatusPending},
	}
}

func TestComplaintList_All(t *testing.T) {
	store := &fakeComplaintStore{complaints: sampleComplaints()}
	svc := NewComplaintService(store)

	got, err := svc.List(helpers.TestCtx(), dto.ComplaintQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Complaints) != 4 {
		t.Fatalf("expected 4 complaints, got %d", len(got.Complaints))
	}
	want := dto.StatusSummary{Total: 4, Pending: 2, InProgress: 1, Resolved: 1}
	if got.Summary != want {
		t.Errorf("summary mismatch: got %+v, want %+v", got.Summary, want)
	}
	if got.Complaints[1].StatusLabel != "En Proceso" {
		t.Errorf("status label mismatch: got %q", got.Complaints[1].StatusLabel)
	}
	if got.Degraded {
		t.Error("expected non-degraded listing")
	}
}

func TestComplaintList_StatusFilter(t *testing.T) {
	store := &fakeComplaintStore{complaints: sampleComplaints()}
	svc := NewComplaintService(store)

	got, err := svc.List(helpers.TestCtx(), dto.ComplaintQuery{Status: helpers.Ptr(" pendiente ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastQuery.Status == nil || *store.lastQuery.Status != models.StatusPending {
		t.Fatalf("expected trimmed status to reach the store, got %v", store.lastQuery.Status)
	}
	if len(got.Complaints) != 2 || got.Summary.Pending != 2 {
		t.Fatalf("filter mismatch: %+v", got.Summary)
	}
}

func TestComplaintList_InvalidStatus(t *testing.T) {
	store := &fakeComplaintStore{}
	svc := NewComplaintService(store)

	_, err := svc.List(helpers.TestCtx(), dto.ComplaintQuery{Status: helpers.Ptr("cerrado")})
	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if store.listCalls != 0 {
		t.Error("store should not be queried for an invalid status")
	}
}

func TestComplaintList_StoreFailureDegrades(t *testing.T) {
	store := &fakeComplaintStore{listErr: errors.New("connection reset")}
	svc := NewComplaintService(store)

	got, err := svc.List(helpers.TestCtx(), dto.ComplaintQuery{})
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if !got.Degraded || got.Complaints == nil || len(got.Complaints) != 0 {
		t.Fatalf("unexpected fallback: %+v", got)
	}
}

func TestComplaintGet(t *testing.T) {
	store := &fakeComplaintStore{complaints: sampleComplaints()}
	svc := NewComplaintService(store)

	got, err := svc.Get(helpers.TestCtx(), "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "3" || got.StatusLabel != "Resuelto" {
		t.Fatalf("unexpected item: %+v", got)
	}

	_, err = svc.Get(helpers.TestCtx(), "99")
	var nfErr *errs.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
}

func TestComplaintGet_EmptyID(t *testing.T) {
	store := &fakeComplaintStore{}
	svc := NewComplaintService(store)

	_, err := svc.Get(helpers.TestCtx(), "  ")
	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if store.lastID != "" {
		t.Error("store should not be queried for an empty id")
	}
}
