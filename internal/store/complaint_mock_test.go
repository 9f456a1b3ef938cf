package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/errs"
	"github.com/grupo1/reclamos-backend/internal/models"
)

func TestMockStore_ListNewestFirst(t *testing.T) {
	s := NewComplaintMockStore()

	var got []models.Complaint
	err := s.List(context.Background(), dto.ComplaintQuery{}, func(c *models.Complaint) error {
		got = append(got, *c)
		return nil
	})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 complaints, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(*got[i-1].CreatedAt) {
			t.Fatalf("complaints not newest first at %d", i)
		}
	}
	if got[0].CustomerName != "Ana Martínez" || got[0].AssignedTo != "" {
		t.Errorf("unexpected newest complaint: %+v", got[0])
	}
}

func TestMockStore_ListStatusFilter(t *testing.T) {
	s := NewComplaintMockStore()
	status := models.StatusResolved

	count := 0
	err := s.List(context.Background(), dto.ComplaintQuery{Status: &status}, func(c *models.Complaint) error {
		if c.Status != status {
			t.Errorf("unexpected status %q", c.Status)
		}
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 resolved complaints, got %d", count)
	}
}

func TestMockStore_StreamRecordsStopsOnHandlerError(t *testing.T) {
	s := NewComplaintMockStore()
	stop := errors.New("stop")

	calls := 0
	err := s.StreamRecords(context.Background(), func(*models.ComplaintRecord) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("expected handler error after one call, got %v after %d", err, calls)
	}
}

func TestMockStore_GetAndCount(t *testing.T) {
	s := NewComplaintMockStore()
	ctx := context.Background()

	c, err := s.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if c.Category != "Producto Dañado" || c.AssignedTo != "Pedro Admin" {
		t.Errorf("unexpected complaint: %+v", c)
	}

	_, err = s.Get(ctx, "missing")
	var nfErr *errs.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}

	n, err := s.Count(ctx)
	if err != nil || n != 6 {
		t.Fatalf("count mismatch: %d, %v", n, err)
	}
}

func TestMockStore_SeedAppends(t *testing.T) {
	s := NewComplaintMockStore()
	ctx := context.Background()

	res, err := s.Seed(ctx, SampleData())
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	if res.Complaints != 6 || res.Categories != 5 || res.Customers != 6 || res.Employees != 3 {
		t.Fatalf("unexpected seed result: %+v", res)
	}
	if n, _ := s.Count(ctx); n != 12 {
		t.Fatalf("expected 12 complaints after seed, got %d", n)
	}
}

func TestMockStore_Ping(t *testing.T) {
	s := NewComplaintMockStore()
	now := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	s.clockNow = func() time.Time { return now }

	got, err := s.Ping(context.Background())
	if err != nil || !got.Equal(now) {
		t.Fatalf("ping mismatch: %v, %v", got, err)
	}
}

func TestValidateSample(t *testing.T) {
	if err := validateSample(SampleData()); err != nil {
		t.Fatalf("sample data should be valid: %v", err)
	}

	bad := []func(*dto.SampleData){
		func(d *dto.SampleData) { d.Complaints[0].Customer = 99 },
		func(d *dto.SampleData) { d.Complaints[0].Category = -1 },
		func(d *dto.SampleData) { d.Complaints[0].Assignee = index(7) },
		func(d *dto.SampleData) { d.Complaints[0].Status = "cerrado" },
		func(d *dto.SampleData) { d.Employees[0].Category = index(5) },
	}
	for i, mutate := range bad {
		data := SampleData()
		mutate(&data)
		var valErr *errs.ValidationError
		if err := validateSample(data); !errors.As(err, &valErr) {
			t.Errorf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestSampleData_Dates(t *testing.T) {
	data := SampleData()
	for i, c := range data.Complaints {
		if c.RecordedAt.IsZero() {
			t.Fatalf("complaint %d has no date", i)
		}
		if c.RecordedAt.Year() != 2025 || c.RecordedAt.Month() != time.November {
			t.Errorf("complaint %d dated %s", i, c.RecordedAt)
		}
	}
}
