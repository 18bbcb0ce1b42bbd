package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
)

// CreateStaffWorkInput carries the fields for recording performed work.
// WorkItemID and Title are mutually exclusive; UnitRateNrs is ignored for
// catalog work (the item's rate is captured instead).
type CreateStaffWorkInput struct {
	StaffID     int64
	WorkItemID  *int64
	ClientID    *int64
	Title       string
	Description string
	Quantity    int64
	UnitRateNrs int64
	PerformedAt time.Time
}

// StaffWorkService manages performed-work records
type StaffWorkService struct {
	staffWorkRepo ledger.StaffWorkRepository
	staffRepo     ledger.StaffRepository
	workItemRepo  ledger.WorkItemRepository
	clientRepo    ledger.ClientRepository
	logger        *zap.Logger
}

// NewStaffWorkService creates a new staff work service
func NewStaffWorkService(staffWorkRepo ledger.StaffWorkRepository, staffRepo ledger.StaffRepository, workItemRepo ledger.WorkItemRepository, clientRepo ledger.ClientRepository, logger *zap.Logger) *StaffWorkService {
	return &StaffWorkService{
		staffWorkRepo: staffWorkRepo,
		staffRepo:     staffRepo,
		workItemRepo:  workItemRepo,
		clientRepo:    clientRepo,
		logger:        logger,
	}
}

// CreateStaffWork records performed work, resolving referenced entities and
// freezing the unit rate for catalog work.
func (s *StaffWorkService) CreateStaffWork(ctx context.Context, input CreateStaffWorkInput) (*ledger.StaffWork, error) {
	if _, err := s.staffRepo.FindByID(ctx, input.StaffID); err != nil {
		return nil, err
	}
	if input.ClientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *input.ClientID); err != nil {
			return nil, err
		}
	}

	var work *ledger.StaffWork
	var err error
	if input.WorkItemID != nil {
		var item *ledger.WorkItem
		item, err = s.workItemRepo.FindByID(ctx, *input.WorkItemID)
		if err != nil {
			return nil, err
		}
		work, err = ledger.NewCatalogStaffWork(input.StaffID, item, input.ClientID, input.Quantity, input.PerformedAt, input.Description)
	} else {
		work, err = ledger.NewAdHocStaffWork(input.StaffID, input.Title, input.Description, input.ClientID, input.Quantity, input.UnitRateNrs, input.PerformedAt)
	}
	if err != nil {
		return nil, err
	}

	if err := s.staffWorkRepo.Save(ctx, work); err != nil {
		return nil, err
	}
	s.logger.Info("staff work recorded",
		zap.Int64("staff_work_id", work.ID),
		zap.Int64("staff_id", work.StaffID),
		zap.Int64("amount_nrs", work.AmountNrs()),
	)
	return work, nil
}

// GetStaffWork returns one staff work row by ID
func (s *StaffWorkService) GetStaffWork(ctx context.Context, id int64) (*ledger.StaffWork, error) {
	return s.staffWorkRepo.FindByID(ctx, id)
}

// ListStaffWork returns staff work rows matching the filter plus the total
// count
func (s *StaffWorkService) ListStaffWork(ctx context.Context, filter ledger.StaffWorkFilter) ([]*ledger.StaffWork, int64, error) {
	return s.staffWorkRepo.FindAll(ctx, filter)
}

// DeleteStaffWork removes a staff work row
func (s *StaffWorkService) DeleteStaffWork(ctx context.Context, id int64) error {
	if _, err := s.staffWorkRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.staffWorkRepo.Delete(ctx, id)
}
