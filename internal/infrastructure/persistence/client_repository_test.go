package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
)

// newMockClientRepository creates a GormClientRepository with a mocked SQL connection
func newMockClientRepository(t *testing.T) (*GormClientRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormClientRepository(gormDB), mock, mockDB
}

func clientRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "type", "contract_start_date", "contract_duration_days",
		"locked_amount_nrs", "advance_amount_nrs", "due_amount_nrs",
		"created_at", "updated_at",
	}).AddRow(int64(7), "Himal Traders", "ACTIVE", now, 365, int64(50000), int64(20000), int64(30000), now, now)
}

func TestGormClientRepository_FindByID(t *testing.T) {
	t.Run("finds existing client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnRows(clientRows())

		client, err := repo.FindByID(context.Background(), 7)

		assert.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, int64(7), client.ID)
		assert.Equal(t, ledger.ClientTypeActive, client.Type)
		assert.Equal(t, int64(30000), client.DueAmountNrs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(99), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		client, err := repo.FindByID(context.Background(), 99)

		assert.Nil(t, client)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_AdjustBalances(t *testing.T) {
	t.Run("applies deltas in one statement and reloads", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "clients" SET .*advance_amount_nrs.*due_amount_nrs.*locked_amount_nrs.* WHERE id = `).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnRows(clientRows())

		client, err := repo.AdjustBalances(context.Background(), 7, 10000, -5000)

		assert.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, int64(7), client.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when no row is updated", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "clients" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		client, err := repo.AdjustBalances(context.Background(), 99, 100, 0)

		assert.Nil(t, client)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_Delete(t *testing.T) {
	t.Run("returns not found for missing client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "clients" WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_SumBalances(t *testing.T) {
	t.Run("aggregates balances across all clients", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(locked_amount_nrs\), 0\) as total_locked`).
			WillReturnRows(sqlmock.NewRows([]string{"total_locked", "total_advance", "total_due"}).
				AddRow(int64(120000), int64(45000), int64(75000)))

		totals, err := repo.SumBalances(context.Background())

		assert.NoError(t, err)
		require.NotNil(t, totals)
		assert.Equal(t, int64(120000), totals.TotalLockedNrs)
		assert.Equal(t, int64(45000), totals.TotalAdvanceNrs)
		assert.Equal(t, int64(75000), totals.TotalDueNrs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_CountByType(t *testing.T) {
	t.Run("counts clients of one type", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "clients" WHERE type = \$1`).
			WithArgs("ACTIVE").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		count, err := repo.CountByType(context.Background(), ledger.ClientTypeActive)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements ClientRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		var _ ledger.ClientRepository = repo
	})
}
