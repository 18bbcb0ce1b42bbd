package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
	"github.com/karobar/backoffice/internal/infrastructure/persistence/models"
)

// GormReminderRepository implements ReminderRepository using GORM
type GormReminderRepository struct {
	db *gorm.DB
}

// NewGormReminderRepository creates a new GormReminderRepository
func NewGormReminderRepository(db *gorm.DB) *GormReminderRepository {
	return &GormReminderRepository{db: db}
}

// Save persists a new reminder and assigns its ID
func (r *GormReminderRepository) Save(ctx context.Context, reminder *ledger.AdminReminder) error {
	var model models.AdminReminderModel
	model.FromDomain(reminder)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	reminder.ID = model.ID
	return nil
}

// FindByID finds a reminder by its ID
func (r *GormReminderRepository) FindByID(ctx context.Context, id int64) (*ledger.AdminReminder, error) {
	var model models.AdminReminderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("AdminReminder", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds reminders matching the filter, most urgent first
func (r *GormReminderRepository) FindAll(ctx context.Context, filter ledger.ReminderFilter) ([]*ledger.AdminReminder, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AdminReminderModel{})
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.PendingOnly {
		query = query.Where("is_completed = ?", false)
	}
	if filter.CompletedOnly {
		query = query.Where("is_completed = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reminderModels []models.AdminReminderModel
	query = query.Order("CASE priority WHEN 'URGENT' THEN 0 WHEN 'HIGH' THEN 1 WHEN 'MEDIUM' THEN 2 ELSE 3 END, due_date NULLS LAST, id")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Find(&reminderModels).Error; err != nil {
		return nil, 0, err
	}

	reminders := make([]*ledger.AdminReminder, len(reminderModels))
	for i := range reminderModels {
		reminders[i] = reminderModels[i].ToDomain()
	}
	return reminders, total, nil
}

// Update persists changes to an existing reminder
func (r *GormReminderRepository) Update(ctx context.Context, reminder *ledger.AdminReminder) error {
	var model models.AdminReminderModel
	model.FromDomain(reminder)
	result := r.db.WithContext(ctx).Model(&models.AdminReminderModel{}).Where("id = ?", reminder.ID).
		Select("*").Omit("id", "created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("AdminReminder", reminder.ID)
	}
	return nil
}

// Delete removes a reminder
func (r *GormReminderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.AdminReminderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("AdminReminder", id)
	}
	return nil
}

// CountPending counts uncompleted reminders
func (r *GormReminderRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AdminReminderModel{}).
		Where("is_completed = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
