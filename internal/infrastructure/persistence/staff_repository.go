package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
	"github.com/karobar/backoffice/internal/infrastructure/persistence/models"
)

// GormStaffRepository implements StaffRepository using GORM
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GormStaffRepository
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Save persists a new staff member and assigns their ID
func (r *GormStaffRepository) Save(ctx context.Context, staff *ledger.Staff) error {
	var model models.StaffModel
	model.FromDomain(staff)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	staff.ID = model.ID
	return nil
}

// FindByID finds a staff member by their ID
func (r *GormStaffRepository) FindByID(ctx context.Context, id int64) (*ledger.Staff, error) {
	var model models.StaffModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Staff", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds staff matching the filter
func (r *GormStaffRepository) FindAll(ctx context.Context, filter ledger.StaffFilter) ([]*ledger.Staff, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.StaffModel{})
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var staffModels []models.StaffModel
	query = query.Order("id")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Find(&staffModels).Error; err != nil {
		return nil, 0, err
	}

	staff := make([]*ledger.Staff, len(staffModels))
	for i := range staffModels {
		staff[i] = staffModels[i].ToDomain()
	}
	return staff, total, nil
}

// Update persists changes to an existing staff member
func (r *GormStaffRepository) Update(ctx context.Context, staff *ledger.Staff) error {
	var model models.StaffModel
	model.FromDomain(staff)
	result := r.db.WithContext(ctx).Model(&models.StaffModel{}).Where("id = ?", staff.ID).
		Select("*").Omit("id", "created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Staff", staff.ID)
	}
	return nil
}

// Delete removes a staff member
func (r *GormStaffRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.StaffModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Staff", id)
	}
	return nil
}

// SumMonthlySalaries totals the salaries of active MONTHLY staff
func (r *GormStaffRepository) SumMonthlySalaries(ctx context.Context) (int64, error) {
	var row struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).Model(&models.StaffModel{}).
		Select("COALESCE(SUM(monthly_salary_nrs), 0) as total").
		Where("type = ? AND is_active = ?", ledger.StaffTypeMonthly.String(), true).
		Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

// CountActive counts active staff members
func (r *GormStaffRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StaffModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
