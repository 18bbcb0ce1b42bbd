package collab

import (
	"time"

	"github.com/karobar/backoffice/internal/domain/shared"
)

// CollaborationStatus represents the lifecycle state of a collaboration
type CollaborationStatus string

const (
	CollaborationStatusDraft     CollaborationStatus = "DRAFT"
	CollaborationStatusActive    CollaborationStatus = "ACTIVE"
	CollaborationStatusCompleted CollaborationStatus = "COMPLETED"
	CollaborationStatusCancelled CollaborationStatus = "CANCELLED"
)

// IsValid checks if the status is a valid CollaborationStatus
func (s CollaborationStatus) IsValid() bool {
	switch s {
	case CollaborationStatusDraft, CollaborationStatusActive, CollaborationStatusCompleted, CollaborationStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of CollaborationStatus
func (s CollaborationStatus) String() string {
	return string(s)
}

// Collaboration represents an agreed campaign with an influencer
type Collaboration struct {
	shared.BaseEntity
	InfluencerID    int64               `json:"influencer_id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	AgreedAmountNrs int64               `json:"agreed_amount_nrs"`
	Status          CollaborationStatus `json:"status"`
	StartDate       *time.Time          `json:"start_date,omitempty"`
	EndDate         *time.Time          `json:"end_date,omitempty"`
	Deliverables    string              `json:"deliverables"`
}

// NewCollaboration creates a collaboration in DRAFT state
func NewCollaboration(influencerID int64, title, description string, agreedAmountNrs int64, startDate, endDate *time.Time, deliverables string) (*Collaboration, error) {
	if influencerID <= 0 {
		return nil, shared.NewValidationError("Influencer ID is required")
	}
	if title == "" {
		return nil, shared.NewValidationError("Collaboration title cannot be empty")
	}
	if agreedAmountNrs < 0 {
		return nil, shared.NewValidationError("Agreed amount cannot be negative")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, shared.NewValidationError("End date cannot be before start date")
	}

	return &Collaboration{
		BaseEntity:      shared.NewBaseEntity(),
		InfluencerID:    influencerID,
		Title:           title,
		Description:     description,
		AgreedAmountNrs: agreedAmountNrs,
		Status:          CollaborationStatusDraft,
		StartDate:       startDate,
		EndDate:         endDate,
		Deliverables:    deliverables,
	}, nil
}

// Activate moves a draft collaboration into ACTIVE
func (c *Collaboration) Activate() error {
	if c.Status != CollaborationStatusDraft {
		return shared.NewBusinessRuleError("Only draft collaborations can be activated")
	}
	c.Status = CollaborationStatusActive
	c.Touch()
	return nil
}

// Complete marks an active collaboration COMPLETED
func (c *Collaboration) Complete() error {
	if c.Status != CollaborationStatusActive {
		return shared.NewBusinessRuleError("Only active collaborations can be completed")
	}
	c.Status = CollaborationStatusCompleted
	c.Touch()
	return nil
}

// Cancel marks the collaboration CANCELLED. Completed collaborations stay
// completed.
func (c *Collaboration) Cancel() error {
	if c.Status == CollaborationStatusCompleted || c.Status == CollaborationStatusCancelled {
		return shared.NewBusinessRuleError("Collaboration is already closed")
	}
	c.Status = CollaborationStatusCancelled
	c.Touch()
	return nil
}

// Update replaces the editable collaboration fields. Closed collaborations
// are immutable.
func (c *Collaboration) Update(title, description string, agreedAmountNrs int64, startDate, endDate *time.Time, deliverables string) error {
	if c.Status == CollaborationStatusCompleted || c.Status == CollaborationStatusCancelled {
		return shared.NewBusinessRuleError("Closed collaborations cannot be edited")
	}
	if title == "" {
		return shared.NewValidationError("Collaboration title cannot be empty")
	}
	if agreedAmountNrs < 0 {
		return shared.NewValidationError("Agreed amount cannot be negative")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return shared.NewValidationError("End date cannot be before start date")
	}

	c.Title = title
	c.Description = description
	c.AgreedAmountNrs = agreedAmountNrs
	c.StartDate = startDate
	c.EndDate = endDate
	c.Deliverables = deliverables
	c.Touch()
	return nil
}
