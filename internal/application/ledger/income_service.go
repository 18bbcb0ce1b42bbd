package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
)

// IncomeService manages income records
type IncomeService struct {
	incomeRepo ledger.IncomeRepository
	clientRepo ledger.ClientRepository
	cache      CacheInvalidator
	logger     *zap.Logger
}

// NewIncomeService creates a new income service
func NewIncomeService(incomeRepo ledger.IncomeRepository, clientRepo ledger.ClientRepository, cache CacheInvalidator, logger *zap.Logger) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo, clientRepo: clientRepo, cache: cache, logger: logger}
}

func (s *IncomeService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// CreateIncome records money received from a client
func (s *IncomeService) CreateIncome(ctx context.Context, description string, amountNrs int64, clientID int64, receivedAt time.Time, notes string) (*ledger.Income, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	income, err := ledger.NewIncome(description, amountNrs, clientID, receivedAt, notes)
	if err != nil {
		return nil, err
	}
	if err := s.incomeRepo.Save(ctx, income); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("income recorded", zap.Int64("income_id", income.ID), zap.Int64("amount_nrs", income.AmountNrs))
	return income, nil
}

// GetIncome returns one income record by ID
func (s *IncomeService) GetIncome(ctx context.Context, id int64) (*ledger.Income, error) {
	return s.incomeRepo.FindByID(ctx, id)
}

// ListIncomes returns income records matching the filter plus the total count
func (s *IncomeService) ListIncomes(ctx context.Context, filter ledger.IncomeFilter) ([]*ledger.Income, int64, error) {
	return s.incomeRepo.FindAll(ctx, filter)
}

// UpdateIncome replaces an income record's editable fields
func (s *IncomeService) UpdateIncome(ctx context.Context, id int64, description string, amountNrs int64, clientID int64, receivedAt time.Time, notes string) (*ledger.Income, error) {
	income, err := s.incomeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	if err := income.Update(description, amountNrs, clientID, receivedAt, notes); err != nil {
		return nil, err
	}
	if err := s.incomeRepo.Update(ctx, income); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return income, nil
}

// DeleteIncome removes an income record
func (s *IncomeService) DeleteIncome(ctx context.Context, id int64) error {
	if _, err := s.incomeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.incomeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
