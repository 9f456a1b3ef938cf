package services

import (
	"context"
	"time"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/pkg/logger"
)

type adminStore interface {
	Ping(ctx context.Context) (time.Time, error)
	Count(ctx context.Context) (int, error)
	Seed(ctx context.Context, data dto.SampleData) (dto.SeedResult, error)
}

type adminService struct {
	store      adminStore
	dataSource string
}

func NewAdminService(store adminStore, dataSource string) *adminService {
	return &adminService{
		store:      store,
		dataSource: dataSource,
	}
}

// Ping checks the store is reachable and reports how many complaints it holds.
func (s *adminService) Ping(ctx context.Context) (dto.PingResult, error) {
	log := logger.FromContext(ctx)
	result := dto.PingResult{DataSource: s.dataSource}

	now, err := s.store.Ping(ctx)
	if err != nil {
		log.Error("connection check failed", "data_source", s.dataSource, "error", err)
		return result, err
	}
	count, err := s.store.Count(ctx)
	if err != nil {
		log.Error("failed to count complaints", "error", err)
		return result, err
	}

	result.OK = true
	result.Now = now
	result.Complaints = count
	log.Debug("connection check succeeded", "data_source", s.dataSource, "complaints", count)
	return result, nil
}

func (s *adminService) Seed(ctx context.Context, data dto.SampleData) (dto.SeedResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.store.Seed(ctx, data)
	if err != nil {
		log.Error("failed to insert sample data", "error", err)
		return result, err
	}

	log.Info("sample data inserted",
		"categories", result.Categories,
		"customers", result.Customers,
		"employees", result.Employees,
		"complaints", result.Complaints)
	return result, nil
}
