package models

import "time"

// ComplaintRecord is the read-only snapshot used for dashboard statistics.
type ComplaintRecord struct {
	Status     string     `firestore:"status" json:"status"`
	RecordedAt *time.Time `firestore:"recordedAt" json:"recordedAt,omitempty"`
	CreatedAt  *time.Time `firestore:"createdAt" json:"createdAt,omitempty"`
}

// ResolvedRecord is a ComplaintRecord with its effective date picked.
type ResolvedRecord struct {
	Status     string
	ResolvedAt time.Time
}

// ResolvedDate returns RecordedAt when set, falling back to CreatedAt.
// ok is false when neither carries a usable instant.
func (r ComplaintRecord) ResolvedDate() (t time.Time, ok bool) {
	if r.RecordedAt != nil && !r.RecordedAt.IsZero() {
		return *r.RecordedAt, true
	}
	if r.CreatedAt != nil && !r.CreatedAt.IsZero() {
		return *r.CreatedAt, true
	}
	return time.Time{}, false
}

// ResolveRecords normalises records in one pass. Records without any date are dropped.
func ResolveRecords(records []ComplaintRecord) []ResolvedRecord {
	out := make([]ResolvedRecord, 0, len(records))
	for _, r := range records {
		t, ok := r.ResolvedDate()
		if !ok {
			continue
		}
		out = append(out, ResolvedRecord{Status: r.Status, ResolvedAt: t})
	}
	return out
}
