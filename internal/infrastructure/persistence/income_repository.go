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

// GormIncomeRepository implements IncomeRepository using GORM
type GormIncomeRepository struct {
	db *gorm.DB
}

// NewGormIncomeRepository creates a new GormIncomeRepository
func NewGormIncomeRepository(db *gorm.DB) *GormIncomeRepository {
	return &GormIncomeRepository{db: db}
}

// Save persists a new income record and assigns its ID
func (r *GormIncomeRepository) Save(ctx context.Context, income *ledger.Income) error {
	var model models.IncomeModel
	model.FromDomain(income)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	income.ID = model.ID
	return nil
}

// FindByID finds an income record by its ID
func (r *GormIncomeRepository) FindByID(ctx context.Context, id int64) (*ledger.Income, error) {
	var model models.IncomeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Income", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds income records matching the filter
func (r *GormIncomeRepository) FindAll(ctx context.Context, filter ledger.IncomeFilter) ([]*ledger.Income, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.IncomeModel{})
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.From != nil {
		query = query.Where("received_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("received_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var incomeModels []models.IncomeModel
	query = query.Order("received_at DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Find(&incomeModels).Error; err != nil {
		return nil, 0, err
	}

	incomes := make([]*ledger.Income, len(incomeModels))
	for i := range incomeModels {
		incomes[i] = incomeModels[i].ToDomain()
	}
	return incomes, total, nil
}

// Update persists changes to an existing income record
func (r *GormIncomeRepository) Update(ctx context.Context, income *ledger.Income) error {
	var model models.IncomeModel
	model.FromDomain(income)
	result := r.db.WithContext(ctx).Model(&models.IncomeModel{}).Where("id = ?", income.ID).
		Select("*").Omit("id", "created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Income", income.ID)
	}
	return nil
}

// Delete removes an income record
func (r *GormIncomeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.IncomeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Income", id)
	}
	return nil
}

// SumAmount totals income over an optional half-open time range
func (r *GormIncomeRepository) SumAmount(ctx context.Context, from, to *time.Time) (int64, error) {
	var row struct {
		Total int64
	}
	query := r.db.WithContext(ctx).Model(&models.IncomeModel{}).
		Select("COALESCE(SUM(amount_nrs), 0) as total")
	if from != nil {
		query = query.Where("received_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("received_at < ?", *to)
	}
	if err := query.Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

// SumAmountByClient groups income by client. Every income row carries a
// client, so these rows always add up to the unfiltered SumAmount.
func (r *GormIncomeRepository) SumAmountByClient(ctx context.Context) ([]ledger.ClientIncomeTotal, error) {
	var rows []struct {
		ClientID   int64
		ClientName string
		TotalNrs   int64
	}
	if err := r.db.WithContext(ctx).Model(&models.IncomeModel{}).
		Select("incomes.client_id as client_id, clients.name as client_name, COALESCE(SUM(incomes.amount_nrs), 0) as total_nrs").
		Joins("JOIN clients ON clients.id = incomes.client_id").
		Group("incomes.client_id, clients.name").
		Order("total_nrs DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make([]ledger.ClientIncomeTotal, len(rows))
	for i, row := range rows {
		totals[i] = ledger.ClientIncomeTotal{
			ClientID:   row.ClientID,
			ClientName: row.ClientName,
			TotalNrs:   row.TotalNrs,
		}
	}
	return totals, nil
}
