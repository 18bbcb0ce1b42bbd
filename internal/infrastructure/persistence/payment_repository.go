package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/karobar/backoffice/internal/domain/collab"
	"github.com/karobar/backoffice/internal/domain/shared"
	"github.com/karobar/backoffice/internal/infrastructure/persistence/models"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Save persists a new payment and assigns its ID
func (r *GormPaymentRepository) Save(ctx context.Context, payment *collab.Payment) error {
	var model models.PaymentModel
	model.FromDomain(payment)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	payment.ID = model.ID
	return nil
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id int64) (*collab.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Payment", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds payments matching the filter
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter collab.PaymentFilter) ([]*collab.Payment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{})
	if filter.CollaborationID != nil {
		query = query.Where("collaboration_id = ?", *filter.CollaborationID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var paymentModels []models.PaymentModel
	query = query.Order("due_date, id")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, 0, err
	}

	payments := make([]*collab.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments, total, nil
}

// FindPendingDueBefore returns pending payments whose due date has passed the
// cutoff, oldest first.
func (r *GormPaymentRepository) FindPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*collab.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", collab.PaymentStatusPending.String(), cutoff).
		Order("due_date, id").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]*collab.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments, nil
}

// Update persists changes to an existing payment
func (r *GormPaymentRepository) Update(ctx context.Context, payment *collab.Payment) error {
	var model models.PaymentModel
	model.FromDomain(payment)
	result := r.db.WithContext(ctx).Model(&models.PaymentModel{}).Where("id = ?", payment.ID).
		Select("*").Omit("id", "created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Payment", payment.ID)
	}
	return nil
}

// Delete removes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Payment", id)
	}
	return nil
}

// SumOutstanding totals payments that are still owed, pending and overdue
// alike.
func (r *GormPaymentRepository) SumOutstanding(ctx context.Context) (int64, error) {
	var row struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(amount_nrs), 0) as total").
		Where("status IN ?", []string{collab.PaymentStatusPending.String(), collab.PaymentStatusOverdue.String()}).
		Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}
