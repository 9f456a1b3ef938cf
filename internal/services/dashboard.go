package services

import (
	"context"
	"math"
	"time"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/models"
	"github.com/grupo1/reclamos-backend/pkg/logger"
)

// statsWindowDays is the divisor for the dashboard's per-day average.
const statsWindowDays = 7

// recordSource is the read side the dashboard needs from any complaint store.
type recordSource interface {
	StreamRecords(ctx context.Context, handle func(*models.ComplaintRecord) error) error
}

type dashboardService struct {
	records  recordSource
	loc      *time.Location
	clockNow func() time.Time
}

func NewDashboardService(records recordSource, loc *time.Location) *dashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardService{
		records:  records,
		loc:      loc,
		clockNow: time.Now,
	}
}

// --- Public service methods ---

// GetStats never fails: when the store is unreachable it logs and serves
// zeroed counts with an empty chart.
func (s *dashboardService) GetStats(ctx context.Context) dto.DashboardStats {
	log := logger.FromContext(ctx)
	now := s.now()

	records, err := s.fetchRecords(ctx)
	if err != nil {
		log.Error("failed to fetch complaint records for stats", "error", err)
		return dto.DashboardStats{
			RecentActivity: emptyActivityChart(dto.Range7Days),
			GeneratedAt:    now,
			Degraded:       true,
		}
	}

	stats := dto.DashboardStats{
		Total:          len(records),
		RecentActivity: newActivityChart(records, dto.Range7Days, now),
		GeneratedAt:    now,
	}
	for _, r := range records {
		switch r.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusResolved:
			stats.Resolved++
		}
	}
	if stats.Total > 0 {
		stats.ResolvedPercent = int(math.Round(float64(stats.Resolved) / float64(stats.Total) * 100))
		stats.AveragePerDay = int(math.Round(float64(stats.Total) / statsWindowDays))
	}

	log.Info("dashboard stats computed", "total", stats.Total)
	return stats
}

func (s *dashboardService) GetActivity(ctx context.Context, rangeParam string) (dto.ActivityChart, error) {
	r, err := ParseTimeRange(rangeParam)
	if err != nil {
		return dto.ActivityChart{}, err
	}

	records, err := s.fetchRecords(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to fetch complaint records for chart", "range", r, "error", err)
		return emptyActivityChart(r), nil
	}
	return newActivityChart(records, r, s.now()), nil
}

// --- Helpers ---

func (s *dashboardService) fetchRecords(ctx context.Context) ([]models.ComplaintRecord, error) {
	var records []models.ComplaintRecord
	err := s.records.StreamRecords(ctx, func(r *models.ComplaintRecord) error {
		records = append(records, *r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Debug("fetched complaint records", "count", len(records))
	if logger.IsDebugEnabled(ctx) && len(records) > 0 {
		log.Debug("sample complaint records", "records", records[:min(2, len(records))])
	}
	return records, nil
}

func (s *dashboardService) now() time.Time {
	return s.clockNow().In(s.loc)
}
