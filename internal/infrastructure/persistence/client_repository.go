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

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Save persists a new client and assigns its ID
func (r *GormClientRepository) Save(ctx context.Context, client *ledger.Client) error {
	var model models.ClientModel
	model.FromDomain(client)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	client.ID = model.ID
	return nil
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id int64) (*ledger.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Client", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter ledger.ClientFilter) ([]*ledger.Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ClientModel{})
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clientModels []models.ClientModel
	query = query.Order("id")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Find(&clientModels).Error; err != nil {
		return nil, 0, err
	}

	clients := make([]*ledger.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = clientModels[i].ToDomain()
	}
	return clients, total, nil
}

// FindExpiringWithinDays finds ACTIVE clients whose contract end date lies in
// (now, now+days]
func (r *GormClientRepository) FindExpiringWithinDays(ctx context.Context, now time.Time, days int) ([]*ledger.Client, error) {
	var clientModels []models.ClientModel
	cutoff := now.AddDate(0, 0, days)
	if err := r.db.WithContext(ctx).
		Where("type = ? AND contract_end_date > ? AND contract_end_date <= ?", ledger.ClientTypeActive.String(), now, cutoff).
		Order("contract_end_date").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}
	clients := make([]*ledger.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = clientModels[i].ToDomain()
	}
	return clients, nil
}

// Update persists changes to an existing client
func (r *GormClientRepository) Update(ctx context.Context, client *ledger.Client) error {
	var model models.ClientModel
	model.FromDomain(client)
	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("id = ?", client.ID).
		Select("*").Omit("id", "created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Client", client.ID)
	}
	return nil
}

// AdjustBalances applies both deltas and the derived due delta in one UPDATE
// statement, so concurrent adjustments serialize at the row and the identity
// due == locked - advance is never observably broken.
func (r *GormClientRepository) AdjustBalances(ctx context.Context, id, lockedDelta, advanceDelta int64) (*ledger.Client, error) {
	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("id = ?", id).Updates(map[string]any{
		"locked_amount_nrs":  gorm.Expr("locked_amount_nrs + ?", lockedDelta),
		"advance_amount_nrs": gorm.Expr("advance_amount_nrs + ?", advanceDelta),
		"due_amount_nrs":     gorm.Expr("due_amount_nrs + ?", lockedDelta-advanceDelta),
		"updated_at":         time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.NewNotFoundError("Client", id)
	}
	return r.FindByID(ctx, id)
}

// Delete removes a client
func (r *GormClientRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Client", id)
	}
	return nil
}

// SumBalances aggregates balances across all clients
func (r *GormClientRepository) SumBalances(ctx context.Context) (*ledger.ClientBalanceTotals, error) {
	var row struct {
		TotalLocked  int64
		TotalAdvance int64
		TotalDue     int64
	}
	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Select("COALESCE(SUM(locked_amount_nrs), 0) as total_locked, COALESCE(SUM(advance_amount_nrs), 0) as total_advance, COALESCE(SUM(due_amount_nrs), 0) as total_due").
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return &ledger.ClientBalanceTotals{
		TotalLockedNrs:  row.TotalLocked,
		TotalAdvanceNrs: row.TotalAdvance,
		TotalDueNrs:     row.TotalDue,
	}, nil
}

// CountByType counts clients of one type
func (r *GormClientRepository) CountByType(ctx context.Context, clientType ledger.ClientType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("type = ?", clientType.String()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountExpiringWithin counts ACTIVE clients expiring in (now, now+days]
func (r *GormClientRepository) CountExpiringWithin(ctx context.Context, now time.Time, days int) (int64, error) {
	var count int64
	cutoff := now.AddDate(0, 0, days)
	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("type = ? AND contract_end_date > ? AND contract_end_date <= ?", ledger.ClientTypeActive.String(), now, cutoff).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
