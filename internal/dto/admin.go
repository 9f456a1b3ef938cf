package dto

import (
	"time"

	"github.com/grupo1/reclamos-backend/internal/models"
)

type PingResult struct {
	OK         bool      `json:"ok"`
	DataSource string    `json:"dataSource"`
	Now        time.Time `json:"now"`
	Complaints int       `json:"complaints"`
}

// SampleComplaint references its customer, category and assignee by index
// into the slices of SampleData. A nil Assignee leaves the complaint unassigned.
type SampleComplaint struct {
	Customer    int
	Category    int
	Assignee    *int
	Description string
	RecordedAt  time.Time
	Status      string
}

// SampleEmployee handles complaints of the category at index Category, if set.
type SampleEmployee struct {
	FullName string
	Email    string
	Category *int
}

type SampleData struct {
	Categories []models.Category
	Customers  []models.Customer
	Employees  []SampleEmployee
	Complaints []SampleComplaint
}

type SeedResult struct {
	Categories int `json:"categories"`
	Customers  int `json:"customers"`
	Employees  int `json:"employees"`
	Complaints int `json:"complaints"`
}
