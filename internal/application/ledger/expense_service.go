package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
)

// ExpenseService manages expense records
type ExpenseService struct {
	expenseRepo ledger.ExpenseRepository
	staffRepo   ledger.StaffRepository
	cache       CacheInvalidator
	logger      *zap.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo ledger.ExpenseRepository, staffRepo ledger.StaffRepository, cache CacheInvalidator, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, staffRepo: staffRepo, cache: cache, logger: logger}
}

func (s *ExpenseService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// CreateExpense records spent money. Staff payout sources require a valid
// staff reference; GENERAL expenses must not carry one.
func (s *ExpenseService) CreateExpense(ctx context.Context, description string, amountNrs int64, source ledger.ExpenseSource, staffID *int64, paidAt time.Time, notes string) (*ledger.Expense, error) {
	var expense *ledger.Expense
	var err error
	if source == ledger.ExpenseSourceGeneral {
		if staffID != nil {
			return nil, shared.NewValidationError("General expenses cannot reference a staff member")
		}
		expense, err = ledger.NewGeneralExpense(description, amountNrs, paidAt, notes)
	} else {
		if staffID == nil {
			return nil, shared.NewValidationError("Staff expense requires a staff member")
		}
		if _, ferr := s.staffRepo.FindByID(ctx, *staffID); ferr != nil {
			return nil, ferr
		}
		expense, err = ledger.NewStaffExpense(description, amountNrs, source, *staffID, paidAt, notes)
	}
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("expense recorded",
		zap.Int64("expense_id", expense.ID),
		zap.String("source", expense.Source.String()),
		zap.Int64("amount_nrs", expense.AmountNrs),
	)
	return expense, nil
}

// GetExpense returns one expense record by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id int64) (*ledger.Expense, error) {
	return s.expenseRepo.FindByID(ctx, id)
}

// ListExpenses returns expense records matching the filter plus the total
// count
func (s *ExpenseService) ListExpenses(ctx context.Context, filter ledger.ExpenseFilter) ([]*ledger.Expense, int64, error) {
	return s.expenseRepo.FindAll(ctx, filter)
}

// UpdateExpense replaces an expense record's editable fields. Source and
// staff attribution are fixed at creation.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id int64, description string, amountNrs int64, paidAt time.Time, notes string) (*ledger.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := expense.Update(description, amountNrs, paidAt, notes); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return expense, nil
}

// DeleteExpense removes an expense record
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := s.expenseRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
