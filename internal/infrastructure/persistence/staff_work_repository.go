package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
	"github.com/karobar/backoffice/internal/infrastructure/persistence/models"
)

// GormStaffWorkRepository implements StaffWorkRepository using GORM
type GormStaffWorkRepository struct {
	db *gorm.DB
}

// NewGormStaffWorkRepository creates a new GormStaffWorkRepository
func NewGormStaffWorkRepository(db *gorm.DB) *GormStaffWorkRepository {
	return &GormStaffWorkRepository{db: db}
}

// Save persists a new staff work row and assigns its ID
func (r *GormStaffWorkRepository) Save(ctx context.Context, work *ledger.StaffWork) error {
	var model models.StaffWorkModel
	model.FromDomain(work)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	work.ID = model.ID
	return nil
}

// FindByID finds a staff work row by its ID
func (r *GormStaffWorkRepository) FindByID(ctx context.Context, id int64) (*ledger.StaffWork, error) {
	var model models.StaffWorkModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("StaffWork", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds staff work rows matching the filter
func (r *GormStaffWorkRepository) FindAll(ctx context.Context, filter ledger.StaffWorkFilter) ([]*ledger.StaffWork, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.StaffWorkModel{})
	if filter.StaffID != nil {
		query = query.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.From != nil {
		query = query.Where("performed_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("performed_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var workModels []models.StaffWorkModel
	query = query.Order("performed_at, id")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Find(&workModels).Error; err != nil {
		return nil, 0, err
	}

	works := make([]*ledger.StaffWork, len(workModels))
	for i := range workModels {
		works[i] = workModels[i].ToDomain()
	}
	return works, total, nil
}

// FindForPayout returns every row in [from, to) without pagination, in
// performed-at order so per-staff accumulation is deterministic.
func (r *GormStaffWorkRepository) FindForPayout(ctx context.Context, from, to time.Time, staffID *int64) ([]*ledger.StaffWork, error) {
	query := r.db.WithContext(ctx).
		Where("performed_at >= ? AND performed_at < ?", from, to)
	if staffID != nil {
		query = query.Where("staff_id = ?", *staffID)
	}

	var workModels []models.StaffWorkModel
	if err := query.Order("performed_at, id").Find(&workModels).Error; err != nil {
		return nil, err
	}
	works := make([]*ledger.StaffWork, len(workModels))
	for i := range workModels {
		works[i] = workModels[i].ToDomain()
	}
	return works, nil
}

// Delete removes a staff work row
func (r *GormStaffWorkRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.StaffWorkModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("StaffWork", id)
	}
	return nil
}
