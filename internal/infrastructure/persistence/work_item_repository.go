package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
	"github.com/karobar/backoffice/internal/infrastructure/persistence/models"
)

// GormWorkItemRepository implements WorkItemRepository using GORM
type GormWorkItemRepository struct {
	db *gorm.DB
}

// NewGormWorkItemRepository creates a new GormWorkItemRepository
func NewGormWorkItemRepository(db *gorm.DB) *GormWorkItemRepository {
	return &GormWorkItemRepository{db: db}
}

// Save persists a new work item and assigns its ID
func (r *GormWorkItemRepository) Save(ctx context.Context, item *ledger.WorkItem) error {
	var model models.WorkItemModel
	model.FromDomain(item)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	item.ID = model.ID
	return nil
}

// FindByID finds a work item by its ID
func (r *GormWorkItemRepository) FindByID(ctx context.Context, id int64) (*ledger.WorkItem, error) {
	var model models.WorkItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("WorkItem", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds work items, optionally only active ones
func (r *GormWorkItemRepository) FindAll(ctx context.Context, activeOnly bool, offset, limit int) ([]*ledger.WorkItem, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.WorkItemModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var itemModels []models.WorkItemModel
	query = query.Order("id")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*ledger.WorkItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToDomain()
	}
	return items, total, nil
}

// Update persists changes to an existing work item
func (r *GormWorkItemRepository) Update(ctx context.Context, item *ledger.WorkItem) error {
	var model models.WorkItemModel
	model.FromDomain(item)
	result := r.db.WithContext(ctx).Model(&models.WorkItemModel{}).Where("id = ?", item.ID).
		Select("*").Omit("id", "created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("WorkItem", item.ID)
	}
	return nil
}

// Delete removes a work item
func (r *GormWorkItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.WorkItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("WorkItem", id)
	}
	return nil
}
