package dto

import "time"

// TimeRange selects the window and granularity of the activity chart.
type TimeRange string

const (
	Range7Days   TimeRange = "7days"
	Range30Days  TimeRange = "30days"
	Range3Months TimeRange = "3months"
)

// Granularity is the width of a single bucket.
type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityWeek Granularity = "week"
)

// Bucket is one bar of the activity chart. Start and End are the bucket's
// inclusive bounds; for daily buckets both fall on the same calendar day.
type Bucket struct {
	Label string    `json:"label"`
	Count int       `json:"count"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ChartBar is a bucket with its proportional height precomputed for the client.
type ChartBar struct {
	Label         string  `json:"label"`
	Count         int     `json:"count"`
	HeightPercent float64 `json:"heightPercent"`
	MinHeightPx   int     `json:"minHeightPx"`
}

type ActivityChart struct {
	Range       TimeRange   `json:"range"`
	Granularity Granularity `json:"granularity"`
	Buckets     []Bucket    `json:"buckets"`
	Bars        []ChartBar  `json:"bars"`
	MaxCount    int         `json:"maxCount"`
	Total       int         `json:"total"`
	Degraded    bool        `json:"degraded,omitempty"`
}

// DashboardStats backs the dashboard landing page.
type DashboardStats struct {
	Total           int           `json:"total"`
	Pending         int           `json:"pending"`
	InProgress      int           `json:"inProgress"`
	Resolved        int           `json:"resolved"`
	ResolvedPercent int           `json:"resolvedPercent"`
	AveragePerDay   int           `json:"averagePerDay"`
	RecentActivity  ActivityChart `json:"recentActivity"`
	GeneratedAt     time.Time     `json:"generatedAt"`
	Degraded        bool          `json:"degraded,omitempty"`
}
