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

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// Save persists a new expense record and assigns its ID
func (r *GormExpenseRepository) Save(ctx context.Context, expense *ledger.Expense) error {
	var model models.ExpenseModel
	model.FromDomain(expense)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	expense.ID = model.ID
	return nil
}

// FindByID finds an expense record by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id int64) (*ledger.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Expense", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds expense records matching the filter
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter ledger.ExpenseFilter) ([]*ledger.Expense, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{})
	if filter.Source != nil {
		query = query.Where("source = ?", filter.Source.String())
	}
	if filter.StaffID != nil {
		query = query.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.From != nil {
		query = query.Where("paid_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("paid_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenseModels []models.ExpenseModel
	query = query.Order("paid_at DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, 0, err
	}

	expenses := make([]*ledger.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToDomain()
	}
	return expenses, total, nil
}

// Update persists changes to an existing expense record
func (r *GormExpenseRepository) Update(ctx context.Context, expense *ledger.Expense) error {
	var model models.ExpenseModel
	model.FromDomain(expense)
	result := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).Where("id = ?", expense.ID).
		Select("*").Omit("id", "created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Expense", expense.ID)
	}
	return nil
}

// Delete removes an expense record
func (r *GormExpenseRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Expense", id)
	}
	return nil
}

// SumAmount totals expenses over an optional half-open time range
func (r *GormExpenseRepository) SumAmount(ctx context.Context, from, to *time.Time) (int64, error) {
	var row struct {
		Total int64
	}
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Select("COALESCE(SUM(amount_nrs), 0) as total")
	if from != nil {
		query = query.Where("paid_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("paid_at < ?", *to)
	}
	if err := query.Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

// SumAmountBySource groups expense totals by source. Sources with no rows are
// absent from the map.
func (r *GormExpenseRepository) SumAmountBySource(ctx context.Context, from, to *time.Time) (map[ledger.ExpenseSource]int64, error) {
	var rows []struct {
		Source string
		Total  int64
	}
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Select("source, COALESCE(SUM(amount_nrs), 0) as total").
		Group("source")
	if from != nil {
		query = query.Where("paid_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("paid_at < ?", *to)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[ledger.ExpenseSource]int64, len(rows))
	for _, row := range rows {
		totals[ledger.ExpenseSource(row.Source)] = row.Total
	}
	return totals, nil
}
