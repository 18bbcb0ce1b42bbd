package collab

import (
	"time"

	"github.com/karobar/backoffice/internal/domain/shared"
)

// PaymentStatus represents the settlement state of an influencer payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusOverdue   PaymentStatus = "OVERDUE"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// Payment represents money owed to an influencer for a collaboration
type Payment struct {
	shared.BaseEntity
	CollaborationID int64         `json:"collaboration_id"`
	AmountNrs       int64         `json:"amount_nrs"`
	Status          PaymentStatus `json:"status"`
	DueDate         time.Time     `json:"due_date"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	Notes           string        `json:"notes"`
}

// NewPayment creates a payment in PENDING state
func NewPayment(collaborationID int64, amountNrs int64, dueDate time.Time, notes string) (*Payment, error) {
	if collaborationID <= 0 {
		return nil, shared.NewValidationError("Collaboration ID is required")
	}
	if amountNrs <= 0 {
		return nil, shared.NewValidationError("Payment amount must be positive")
	}

	return &Payment{
		BaseEntity:      shared.NewBaseEntity(),
		CollaborationID: collaborationID,
		AmountNrs:       amountNrs,
		Status:          PaymentStatusPending,
		DueDate:         dueDate,
		Notes:           notes,
	}, nil
}

// MarkPaid settles a pending or overdue payment
func (p *Payment) MarkPaid(paidAt time.Time) error {
	if p.Status != PaymentStatusPending && p.Status != PaymentStatusOverdue {
		return shared.NewBusinessRuleError("Only pending or overdue payments can be paid")
	}
	p.Status = PaymentStatusPaid
	p.PaidAt = &paidAt
	p.Touch()
	return nil
}

// Cancel voids a payment that has not been settled
func (p *Payment) Cancel() error {
	if p.Status == PaymentStatusPaid {
		return shared.NewBusinessRuleError("Paid payments cannot be cancelled")
	}
	if p.Status == PaymentStatusCancelled {
		return shared.NewBusinessRuleError("Payment is already cancelled")
	}
	p.Status = PaymentStatusCancelled
	p.Touch()
	return nil
}

// MarkOverdue flips a pending payment whose due date has passed
func (p *Payment) MarkOverdue(now time.Time) error {
	if p.Status != PaymentStatusPending {
		return shared.NewBusinessRuleError("Only pending payments can become overdue")
	}
	if !now.After(p.DueDate) {
		return shared.NewBusinessRuleError("Payment is not past its due date")
	}
	p.Status = PaymentStatusOverdue
	p.Touch()
	return nil
}
