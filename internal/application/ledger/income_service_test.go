package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
)

type stubIncomeRepo struct {
	saved  []*ledger.Income
	nextID int64
}

func (r *stubIncomeRepo) Save(_ context.Context, income *ledger.Income) error {
	r.nextID++
	income.ID = r.nextID
	r.saved = append(r.saved, income)
	return nil
}

func (r *stubIncomeRepo) FindByID(_ context.Context, id int64) (*ledger.Income, error) {
	for _, i := range r.saved {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, shared.NewNotFoundError("Income", id)
}

func (r *stubIncomeRepo) FindAll(_ context.Context, _ ledger.IncomeFilter) ([]*ledger.Income, int64, error) {
	return r.saved, int64(len(r.saved)), nil
}

func (r *stubIncomeRepo) Update(_ context.Context, _ *ledger.Income) error { return nil }

func (r *stubIncomeRepo) Delete(_ context.Context, _ int64) error { return nil }

func (r *stubIncomeRepo) SumAmount(_ context.Context, _, _ *time.Time) (int64, error) {
	return 0, nil
}

func (r *stubIncomeRepo) SumAmountByClient(_ context.Context) ([]ledger.ClientIncomeTotal, error) {
	return nil, nil
}

// stubClientRepo knows a fixed set of client IDs; only FindByID matters here
type stubClientRepo struct {
	known map[int64]*ledger.Client
}

func (r *stubClientRepo) Save(_ context.Context, _ *ledger.Client) error { return nil }

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*ledger.Client, error) {
	client, ok := r.known[id]
	if !ok {
		return nil, shared.NewNotFoundError("Client", id)
	}
	return client, nil
}

func (r *stubClientRepo) FindAll(_ context.Context, _ ledger.ClientFilter) ([]*ledger.Client, int64, error) {
	return nil, 0, nil
}

func (r *stubClientRepo) FindExpiringWithinDays(_ context.Context, _ time.Time, _ int) ([]*ledger.Client, error) {
	return nil, nil
}

func (r *stubClientRepo) Update(_ context.Context, _ *ledger.Client) error { return nil }

func (r *stubClientRepo) AdjustBalances(_ context.Context, id, _, _ int64) (*ledger.Client, error) {
	return nil, shared.NewNotFoundError("Client", id)
}

func (r *stubClientRepo) Delete(_ context.Context, _ int64) error { return nil }

func (r *stubClientRepo) SumBalances(_ context.Context) (*ledger.ClientBalanceTotals, error) {
	return &ledger.ClientBalanceTotals{}, nil
}

func (r *stubClientRepo) CountByType(_ context.Context, _ ledger.ClientType) (int64, error) {
	return 0, nil
}

func (r *stubClientRepo) CountExpiringWithin(_ context.Context, _ time.Time, _ int) (int64, error) {
	return 0, nil
}

func newIncomeFixture(clientIDs ...int64) (*IncomeService, *stubIncomeRepo) {
	clients := &stubClientRepo{known: map[int64]*ledger.Client{}}
	for _, id := range clientIDs {
		clients.known[id] = &ledger.Client{}
	}
	incomes := &stubIncomeRepo{}
	return NewIncomeService(incomes, clients, nil, zap.NewNop()), incomes
}

func TestCreateIncome(t *testing.T) {
	ctx := context.Background()
	received := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	t.Run("records income against a known client", func(t *testing.T) {
		service, repo := newIncomeFixture(7)

		income, err := service.CreateIncome(ctx, "Retainer", 1500, 7, received, "")
		require.NoError(t, err)
		assert.Equal(t, int64(7), income.ClientID)
		require.Len(t, repo.saved, 1)
	})

	t.Run("rejects an unknown client", func(t *testing.T) {
		service, repo := newIncomeFixture(7)

		_, err := service.CreateIncome(ctx, "Retainer", 1500, 99, received, "")
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.Empty(t, repo.saved)
	})
}

func TestUpdateIncome(t *testing.T) {
	ctx := context.Background()
	received := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	t.Run("cannot move income to an unknown client", func(t *testing.T) {
		service, _ := newIncomeFixture(7)
		income, err := service.CreateIncome(ctx, "Retainer", 1500, 7, received, "")
		require.NoError(t, err)

		_, err = service.UpdateIncome(ctx, income.ID, "Retainer", 1500, 99, received, "")
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}
