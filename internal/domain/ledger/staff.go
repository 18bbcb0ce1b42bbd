package ledger

import (
	"github.com/karobar/backoffice/internal/domain/shared"
)

// StaffType represents how a staff member is compensated
type StaffType string

const (
	StaffTypeMonthly   StaffType = "MONTHLY"
	StaffTypeWorkBasis StaffType = "WORK_BASIS"
)

// IsValid checks if the type is a valid StaffType
func (t StaffType) IsValid() bool {
	switch t {
	case StaffTypeMonthly, StaffTypeWorkBasis:
		return true
	}
	return false
}

// String returns the string representation of StaffType
func (t StaffType) String() string {
	return string(t)
}

// Staff represents a contracted staff member.
// MonthlySalaryNrs is meaningful only for MONTHLY staff.
type Staff struct {
	shared.BaseEntity
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Type             StaffType `json:"type"`
	MonthlySalaryNrs int64     `json:"monthly_salary_nrs"`
	IsActive         bool      `json:"is_active"`
}

// NewStaff creates a new staff member
func NewStaff(name, email, phone string, staffType StaffType, monthlySalaryNrs int64) (*Staff, error) {
	if name == "" {
		return nil, shared.NewValidationError("Staff name cannot be empty")
	}
	if !staffType.IsValid() {
		return nil, shared.NewValidationError("Staff type is not valid")
	}
	if monthlySalaryNrs < 0 {
		return nil, shared.NewValidationError("Monthly salary cannot be negative")
	}
	if staffType == StaffTypeWorkBasis && monthlySalaryNrs != 0 {
		return nil, shared.NewBusinessRuleError("Work-basis staff cannot have a monthly salary")
	}

	return &Staff{
		BaseEntity:       shared.NewBaseEntity(),
		Name:             name,
		Email:            email,
		Phone:            phone,
		Type:             staffType,
		MonthlySalaryNrs: monthlySalaryNrs,
		IsActive:         true,
	}, nil
}

// Update replaces the editable staff fields
func (s *Staff) Update(name, email, phone string, staffType StaffType, monthlySalaryNrs int64, isActive bool) error {
	if name == "" {
		return shared.NewValidationError("Staff name cannot be empty")
	}
	if !staffType.IsValid() {
		return shared.NewValidationError("Staff type is not valid")
	}
	if monthlySalaryNrs < 0 {
		return shared.NewValidationError("Monthly salary cannot be negative")
	}
	if staffType == StaffTypeWorkBasis && monthlySalaryNrs != 0 {
		return shared.NewBusinessRuleError("Work-basis staff cannot have a monthly salary")
	}

	s.Name = name
	s.Email = email
	s.Phone = phone
	s.Type = staffType
	s.MonthlySalaryNrs = monthlySalaryNrs
	s.IsActive = isActive
	s.Touch()
	return nil
}

// Deactivate marks the staff member inactive
func (s *Staff) Deactivate() {
	s.IsActive = false
	s.Touch()
}
