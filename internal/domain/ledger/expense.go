package ledger

import (
	"time"

	"github.com/karobar/backoffice/internal/domain/shared"
)

// ExpenseSource classifies where an expense row came from
type ExpenseSource string

const (
	ExpenseSourceStaffMonthly   ExpenseSource = "STAFF_MONTHLY"
	ExpenseSourceStaffWorkBasis ExpenseSource = "STAFF_WORK_BASIS"
	ExpenseSourceGeneral        ExpenseSource = "GENERAL"
)

// IsValid checks if the source is a valid ExpenseSource
func (s ExpenseSource) IsValid() bool {
	switch s {
	case ExpenseSourceStaffMonthly, ExpenseSourceStaffWorkBasis, ExpenseSourceGeneral:
		return true
	}
	return false
}

// String returns the string representation of ExpenseSource
func (s ExpenseSource) String() string {
	return string(s)
}

// Expense represents money spent. Staff payout expenses carry the staff ID
// and a source marking whether they settle a monthly salary or work-basis
// earnings.
type Expense struct {
	shared.BaseEntity
	Description string        `json:"description"`
	AmountNrs   int64         `json:"amount_nrs"`
	Source      ExpenseSource `json:"source"`
	StaffID     *int64        `json:"staff_id,omitempty"`
	PaidAt      time.Time     `json:"paid_at"`
	Notes       string        `json:"notes"`
}

// NewGeneralExpense creates an expense not tied to any staff member
func NewGeneralExpense(description string, amountNrs int64, paidAt time.Time, notes string) (*Expense, error) {
	if description == "" {
		return nil, shared.NewValidationError("Expense description cannot be empty")
	}
	if amountNrs <= 0 {
		return nil, shared.NewValidationError("Expense amount must be positive")
	}

	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		Description: description,
		AmountNrs:   amountNrs,
		Source:      ExpenseSourceGeneral,
		PaidAt:      paidAt,
		Notes:       notes,
	}, nil
}

// NewStaffExpense creates a staff payout expense
func NewStaffExpense(description string, amountNrs int64, source ExpenseSource, staffID int64, paidAt time.Time, notes string) (*Expense, error) {
	if description == "" {
		return nil, shared.NewValidationError("Expense description cannot be empty")
	}
	if amountNrs <= 0 {
		return nil, shared.NewValidationError("Expense amount must be positive")
	}
	if source != ExpenseSourceStaffMonthly && source != ExpenseSourceStaffWorkBasis {
		return nil, shared.NewValidationError("Staff expense source must be STAFF_MONTHLY or STAFF_WORK_BASIS")
	}
	if staffID <= 0 {
		return nil, shared.NewValidationError("Staff ID is required")
	}

	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		Description: description,
		AmountNrs:   amountNrs,
		Source:      source,
		StaffID:     &staffID,
		PaidAt:      paidAt,
		Notes:       notes,
	}, nil
}

// Update replaces the editable expense fields
func (e *Expense) Update(description string, amountNrs int64, paidAt time.Time, notes string) error {
	if description == "" {
		return shared.NewValidationError("Expense description cannot be empty")
	}
	if amountNrs <= 0 {
		return shared.NewValidationError("Expense amount must be positive")
	}

	e.Description = description
	e.AmountNrs = amountNrs
	e.PaidAt = paidAt
	e.Notes = notes
	e.Touch()
	return nil
}
