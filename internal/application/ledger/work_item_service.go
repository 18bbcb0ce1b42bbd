package ledger

import (
	"context"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
)

// WorkItemService manages the billable work item catalog
type WorkItemService struct {
	workItemRepo ledger.WorkItemRepository
	logger       *zap.Logger
}

// NewWorkItemService creates a new work item service
func NewWorkItemService(workItemRepo ledger.WorkItemRepository, logger *zap.Logger) *WorkItemService {
	return &WorkItemService{workItemRepo: workItemRepo, logger: logger}
}

// CreateWorkItem creates a new work item
func (s *WorkItemService) CreateWorkItem(ctx context.Context, title string, rateNrs int64) (*ledger.WorkItem, error) {
	item, err := ledger.NewWorkItem(title, rateNrs)
	if err != nil {
		return nil, err
	}
	if err := s.workItemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetWorkItem returns one work item by ID
func (s *WorkItemService) GetWorkItem(ctx context.Context, id int64) (*ledger.WorkItem, error) {
	return s.workItemRepo.FindByID(ctx, id)
}

// ListWorkItems returns work items plus the total count
func (s *WorkItemService) ListWorkItems(ctx context.Context, activeOnly bool, offset, limit int) ([]*ledger.WorkItem, int64, error) {
	return s.workItemRepo.FindAll(ctx, activeOnly, offset, limit)
}

// UpdateWorkItem replaces a work item's editable fields. Rates already
// captured on staff work rows are untouched.
func (s *WorkItemService) UpdateWorkItem(ctx context.Context, id int64, title string, rateNrs int64, isActive bool) (*ledger.WorkItem, error) {
	item, err := s.workItemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.Update(title, rateNrs, isActive); err != nil {
		return nil, err
	}
	if err := s.workItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteWorkItem removes a work item from the catalog
func (s *WorkItemService) DeleteWorkItem(ctx context.Context, id int64) error {
	if _, err := s.workItemRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.workItemRepo.Delete(ctx, id)
}
