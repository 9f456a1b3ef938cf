package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/pkg/helpers"
)

type fakeAdminStore struct {
	now      time.Time
	count    int
	pingErr  error
	countErr error
	seedErr  error

	lastSeed dto.SampleData
}

func (f *fakeAdminStore) Ping(context.Context) (time.Time, error) { return f.now, f.pingErr }

func (f *fakeAdminStore) Count(context.Context) (int, error) { return f.count, f.countErr }

func (f *fakeAdminStore) Seed(_ context.Context, data dto.SampleData) (dto.SeedResult, error) {
	f.lastSeed = data
	if f.seedErr != nil {
		return dto.SeedResult{}, f.seedErr
	}
	return dto.SeedResult{
		Categories: len(data.Categories),
		Customers:  len(data.Customers),
		Employees:  len(data.Employees),
		Complaints: len(data.Complaints),
	}, nil
}

func TestAdminPing(t *testing.T) {
	now := time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC)
	svc := NewAdminService(&fakeAdminStore{now: now, count: 6}, "postgres")

	got, err := svc.Ping(helpers.TestCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.OK || got.Complaints != 6 || got.DataSource != "postgres" || !got.Now.Equal(now) {
		t.Fatalf("unexpected ping result: %+v", got)
	}
}

func TestAdminPing_Failures(t *testing.T) {
	for _, store := range []*fakeAdminStore{
		{pingErr: errors.New("refused")},
		{countErr: errors.New("relation does not exist")},
	} {
		svc := NewAdminService(store, "postgres")
		got, err := svc.Ping(helpers.TestCtx())
		if err == nil {
			t.Fatal("expected error")
		}
		if got.OK || got.DataSource != "postgres" {
			t.Fatalf("unexpected result on failure: %+v", got)
		}
	}
}

func TestAdminSeed(t *testing.T) {
	store := &fakeAdminStore{}
	svc := NewAdminService(store, "mock")
	data := dto.SampleData{
		Complaints: []dto.SampleComplaint{{Description: "a"}, {Description: "b"}},
	}

	got, err := svc.Seed(helpers.TestCtx(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Complaints != 2 || len(store.lastSeed.Complaints) != 2 {
		t.Fatalf("unexpected seed result: %+v", got)
	}

	store.seedErr = errors.New("duplicate key")
	if _, err := svc.Seed(helpers.TestCtx(), data); err == nil {
		t.Fatal("expected seed error")
	}
}
