package models

import "time"

// Complaint statuses as stored in the reclamos.estado column.
const (
	StatusPending    = "pendiente"
	StatusInProgress = "en_proceso"
	StatusResolved   = "resuelto"
)

var statusLabels = map[string]string{
	StatusPending:    "Pendiente",
	StatusInProgress: "En Proceso",
	StatusResolved:   "Resuelto",
}

// StatusLabel returns the display label for a status, or the raw status when unknown.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// ValidStatus reports whether status is one of the known complaint states.
func ValidStatus(status string) bool {
	_, ok := statusLabels[status]
	return ok
}

// Complaint is a reclamo joined with its customer, category and assignee.
type Complaint struct {
	ID            string     `firestore:"id" json:"id"`
	CustomerName  string     `firestore:"customerName" json:"customerName"`
	CustomerEmail string     `firestore:"customerEmail" json:"customerEmail"`
	Description   string     `firestore:"description" json:"description"`
	Category      string     `firestore:"category,omitempty" json:"category,omitempty"`
	Status        string     `firestore:"status" json:"status"`
	AssignedTo    string     `firestore:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	RecordedAt    *time.Time `firestore:"recordedAt" json:"recordedAt,omitempty"` // fecha_reclamo
	CreatedAt     *time.Time `firestore:"createdAt" json:"createdAt,omitempty"`
}

// Record returns the subset of fields used for statistics.
func (c *Complaint) Record() ComplaintRecord {
	return ComplaintRecord{
		Status:     c.Status,
		RecordedAt: c.RecordedAt,
		CreatedAt:  c.CreatedAt,
	}
}
