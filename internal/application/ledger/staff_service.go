package ledger

import (
	"context"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
)

// StaffService manages staff records
type StaffService struct {
	staffRepo ledger.StaffRepository
	logger    *zap.Logger
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo ledger.StaffRepository, logger *zap.Logger) *StaffService {
	return &StaffService{staffRepo: staffRepo, logger: logger}
}

// CreateStaff creates a new staff member
func (s *StaffService) CreateStaff(ctx context.Context, name, email, phone string, staffType ledger.StaffType, monthlySalaryNrs int64) (*ledger.Staff, error) {
	staff, err := ledger.NewStaff(name, email, phone, staffType, monthlySalaryNrs)
	if err != nil {
		return nil, err
	}
	if err := s.staffRepo.Save(ctx, staff); err != nil {
		return nil, err
	}
	s.logger.Info("staff created", zap.Int64("staff_id", staff.ID), zap.String("type", staff.Type.String()))
	return staff, nil
}

// GetStaff returns one staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id int64) (*ledger.Staff, error) {
	return s.staffRepo.FindByID(ctx, id)
}

// ListStaff returns staff matching the filter plus the total count
func (s *StaffService) ListStaff(ctx context.Context, filter ledger.StaffFilter) ([]*ledger.Staff, int64, error) {
	return s.staffRepo.FindAll(ctx, filter)
}

// UpdateStaff replaces a staff member's editable fields
func (s *StaffService) UpdateStaff(ctx context.Context, id int64, name, email, phone string, staffType ledger.StaffType, monthlySalaryNrs int64, isActive bool) (*ledger.Staff, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := staff.Update(name, email, phone, staffType, monthlySalaryNrs, isActive); err != nil {
		return nil, err
	}
	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// DeleteStaff removes a staff member
func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	if _, err := s.staffRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.staffRepo.Delete(ctx, id)
}
