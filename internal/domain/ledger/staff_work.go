package ledger

import (
	"time"

	"github.com/karobar/backoffice/internal/domain/shared"
)

// StaffWork represents one unit-count of work performed by a staff member,
// optionally attributed to a client. The unit rate is captured at creation
// time so later catalog rate changes never alter historical payouts.
//
// At least one of WorkItemID or Title must be set: catalog work references a
// work item, ad-hoc work carries its own title and rate.
type StaffWork struct {
	shared.BaseEntity
	StaffID     int64     `json:"staff_id"`
	WorkItemID  *int64    `json:"work_item_id,omitempty"`
	ClientID    *int64    `json:"client_id,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity"`
	UnitRateNrs int64     `json:"unit_rate_nrs"`
	PerformedAt time.Time `json:"performed_at"`
}

// NewCatalogStaffWork records work against a catalog work item, freezing the
// item's current rate onto the row.
func NewCatalogStaffWork(staffID int64, item *WorkItem, clientID *int64, quantity int64, performedAt time.Time, description string) (*StaffWork, error) {
	if staffID <= 0 {
		return nil, shared.NewValidationError("Staff ID is required")
	}
	if item == nil {
		return nil, shared.NewValidationError("Work item is required")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("Quantity must be positive")
	}
	if clientID != nil && *clientID <= 0 {
		return nil, shared.NewValidationError("Client ID is not valid")
	}

	itemID := item.ID
	return &StaffWork{
		BaseEntity:  shared.NewBaseEntity(),
		StaffID:     staffID,
		WorkItemID:  &itemID,
		ClientID:    clientID,
		Description: description,
		Quantity:    quantity,
		UnitRateNrs: item.RateNrs,
		PerformedAt: performedAt,
	}, nil
}

// NewAdHocStaffWork records one-off work that has no catalog entry
func NewAdHocStaffWork(staffID int64, title, description string, clientID *int64, quantity, unitRateNrs int64, performedAt time.Time) (*StaffWork, error) {
	if staffID <= 0 {
		return nil, shared.NewValidationError("Staff ID is required")
	}
	if title == "" {
		return nil, shared.NewValidationError("Ad-hoc work requires a title")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("Quantity must be positive")
	}
	if unitRateNrs < 0 {
		return nil, shared.NewValidationError("Unit rate cannot be negative")
	}
	if clientID != nil && *clientID <= 0 {
		return nil, shared.NewValidationError("Client ID is not valid")
	}

	return &StaffWork{
		BaseEntity:  shared.NewBaseEntity(),
		StaffID:     staffID,
		ClientID:    clientID,
		Title:       title,
		Description: description,
		Quantity:    quantity,
		UnitRateNrs: unitRateNrs,
		PerformedAt: performedAt,
	}, nil
}

// Validate checks the work-item-or-title invariant on a row loaded from
// storage. Rows failing this are skipped by payout aggregation and surfaced
// as warnings rather than failing the whole computation.
func (w *StaffWork) Validate() error {
	if w.WorkItemID == nil && w.Title == "" {
		return shared.NewDataIntegrityError("Staff work must reference a work item or carry a title")
	}
	if w.Quantity <= 0 {
		return shared.NewDataIntegrityError("Staff work quantity must be positive")
	}
	if w.UnitRateNrs < 0 {
		return shared.NewDataIntegrityError("Staff work unit rate cannot be negative")
	}
	return nil
}

// AmountNrs returns quantity times the captured unit rate
func (w *StaffWork) AmountNrs() int64 {
	return w.Quantity * w.UnitRateNrs
}
