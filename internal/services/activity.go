package services

import (
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/errs"
	"github.com/grupo1/reclamos-backend/internal/models"
)

const dashDateLayout = "2006-01-02"

const (
	weeklyBuckets = 12
	daysPerWeek   = 7

	barMinHeightPx   = 12
	barEmptyHeightPx = 4
)

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// ParseTimeRange validates a range query value. Empty means the 7 day chart.
func ParseTimeRange(s string) (dto.TimeRange, error) {
	switch r := dto.TimeRange(s); r {
	case "":
		return dto.Range7Days, nil
	case dto.Range7Days, dto.Range30Days, dto.Range3Months:
		return r, nil
	}
	return "", errs.NewUnsupportedRangeError(s)
}

func rangeGranularity(r dto.TimeRange) (days int, g dto.Granularity, ok bool) {
	switch r {
	case dto.Range7Days:
		return 7, dto.GranularityDay, true
	case dto.Range30Days:
		return 30, dto.GranularityDay, true
	case dto.Range3Months:
		return weeklyBuckets * daysPerWeek, dto.GranularityWeek, true
	}
	return 0, "", false
}

// BucketActivity groups complaint records into chart buckets ending at ref,
// oldest first. Daily ranges match on calendar date in ref's location; the
// weekly range matches full instants against [end-6d, end] windows anchored
// on ref itself. Records without a date are skipped. An unknown range yields nil.
func BucketActivity(records []models.ComplaintRecord, r dto.TimeRange, ref time.Time) []dto.Bucket {
	days, g, ok := rangeGranularity(r)
	if !ok {
		return nil
	}
	resolved := models.ResolveRecords(records)
	if g == dto.GranularityWeek {
		return bucketWeekly(resolved, ref)
	}
	return bucketDaily(resolved, days, ref)
}

func bucketDaily(records []models.ResolvedRecord, days int, ref time.Time) []dto.Bucket {
	loc := ref.Location()
	counts := make(map[string]int, len(records))
	for _, rec := range records {
		counts[rec.ResolvedAt.In(loc).Format(dashDateLayout)]++
	}

	today := startOfDay(ref)
	buckets := make([]dto.Bucket, days)
	for i := range buckets {
		day := today.AddDate(0, 0, -(days - 1 - i))
		buckets[i] = dto.Bucket{
			Label: shortLabel(day),
			Count: counts[day.Format(dashDateLayout)],
			Start: day,
			End:   endOfDay(day),
		}
	}
	return buckets
}

func bucketWeekly(records []models.ResolvedRecord, ref time.Time) []dto.Bucket {
	buckets := make([]dto.Bucket, 0, weeklyBuckets)
	for i := 0; i < weeklyBuckets; i++ {
		weekEnd := ref.AddDate(0, 0, -i*daysPerWeek)
		weekStart := weekEnd.AddDate(0, 0, -(daysPerWeek - 1))

		count := 0
		for _, rec := range records {
			if !rec.ResolvedAt.Before(weekStart) && !rec.ResolvedAt.After(weekEnd) {
				count++
			}
		}
		buckets = append(buckets, dto.Bucket{
			Label: shortLabel(weekStart),
			Count: count,
			Start: weekStart,
			End:   weekEnd,
		})
	}
	slices.Reverse(buckets)
	return buckets
}

// MaxCount is the largest bucket count, never less than 1.
func MaxCount(buckets []dto.Bucket) int {
	highest := 1
	for _, b := range buckets {
		if b.Count > highest {
			highest = b.Count
		}
	}
	return highest
}

func TotalCount(buckets []dto.Bucket) int {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	return total
}

// RenderBars scales each bucket against MaxCount. Non-empty bars keep a
// visible floor so a single complaint never renders as a sliver.
func RenderBars(buckets []dto.Bucket) []dto.ChartBar {
	scale := float64(MaxCount(buckets))
	bars := make([]dto.ChartBar, len(buckets))
	for i, b := range buckets {
		minHeight := barEmptyHeightPx
		if b.Count > 0 {
			minHeight = barMinHeightPx
		}
		bars[i] = dto.ChartBar{
			Label:         b.Label,
			Count:         b.Count,
			HeightPercent: math.Round(float64(b.Count)/scale*100*100) / 100,
			MinHeightPx:   minHeight,
		}
	}
	return bars
}

// newActivityChart runs the bucketer and derives everything a chart needs.
func newActivityChart(records []models.ComplaintRecord, r dto.TimeRange, ref time.Time) dto.ActivityChart {
	_, g, _ := rangeGranularity(r)
	buckets := BucketActivity(records, r, ref)
	return dto.ActivityChart{
		Range:       r,
		Granularity: g,
		Buckets:     buckets,
		Bars:        RenderBars(buckets),
		MaxCount:    MaxCount(buckets),
		Total:       TotalCount(buckets),
	}
}

// emptyActivityChart is served when the records could not be fetched.
func emptyActivityChart(r dto.TimeRange) dto.ActivityChart {
	_, g, _ := rangeGranularity(r)
	return dto.ActivityChart{
		Range:       r,
		Granularity: g,
		Buckets:     []dto.Bucket{},
		Bars:        []dto.ChartBar{},
		MaxCount:    1,
		Degraded:    true,
	}
}

// --- Calendar helpers ---

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// shortLabel formats "10 nov" the way the es-ES dashboard does.
func shortLabel(t time.Time) string {
	return strconv.Itoa(t.Day()) + " " + shortMonths[t.Month()-1]
}
