package ledger

import (
	"github.com/karobar/backoffice/internal/domain/shared"
)

// WorkItem represents a billable unit of work with a default unit rate
type WorkItem struct {
	shared.BaseEntity
	Title    string `json:"title"`
	RateNrs  int64  `json:"rate_nrs"`
	IsActive bool   `json:"is_active"`
}

// NewWorkItem creates a new work item
func NewWorkItem(title string, rateNrs int64) (*WorkItem, error) {
	if title == "" {
		return nil, shared.NewValidationError("Work item title cannot be empty")
	}
	if rateNrs < 0 {
		return nil, shared.NewValidationError("Work item rate cannot be negative")
	}

	return &WorkItem{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		RateNrs:    rateNrs,
		IsActive:   true,
	}, nil
}

// Update replaces the editable work item fields.
// Changing the rate never touches unit rates already captured on StaffWork
// rows; those are values frozen at creation time.
func (w *WorkItem) Update(title string, rateNrs int64, isActive bool) error {
	if title == "" {
		return shared.NewValidationError("Work item title cannot be empty")
	}
	if rateNrs < 0 {
		return shared.NewValidationError("Work item rate cannot be negative")
	}

	w.Title = title
	w.RateNrs = rateNrs
	w.IsActive = isActive
	w.Touch()
	return nil
}
