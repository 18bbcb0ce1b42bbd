package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
)

type fakeClientRepo struct {
	clients map[int64]*ledger.Client
	nextID  int64
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int64]*ledger.Client{}, nextID: 1}
}

func (r *fakeClientRepo) Save(_ context.Context, client *ledger.Client) error {
	client.ID = r.nextID
	r.nextID++
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id int64) (*ledger.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, shared.NewNotFoundError("Client", id)
	}
	return client, nil
}

func (r *fakeClientRepo) FindAll(_ context.Context, _ ledger.ClientFilter) ([]*ledger.Client, int64, error) {
	var out []*ledger.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeClientRepo) FindExpiringWithinDays(_ context.Context, now time.Time, days int) ([]*ledger.Client, error) {
	var out []*ledger.Client
	cutoff := now.AddDate(0, 0, days)
	for _, c := range r.clients {
		end := c.ContractEndDate()
		if end.After(now) && !end.After(cutoff) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *ledger.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return shared.NewNotFoundError("Client", client.ID)
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) AdjustBalances(ctx context.Context, id, lockedDelta, advanceDelta int64) (*ledger.Client, error) {
	client, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	client.AdjustBalances(lockedDelta, advanceDelta)
	return client, nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id int64) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) SumBalances(_ context.Context) (*ledger.ClientBalanceTotals, error) {
	totals := &ledger.ClientBalanceTotals{}
	for _, c := range r.clients {
		totals.TotalLockedNrs += c.LockedAmountNrs
		totals.TotalAdvanceNrs += c.AdvanceAmountNrs
		totals.TotalDueNrs += c.DueAmountNrs
	}
	return totals, nil
}

func (r *fakeClientRepo) CountByType(_ context.Context, clientType ledger.ClientType) (int64, error) {
	var n int64
	for _, c := range r.clients {
		if c.Type == clientType {
			n++
		}
	}
	return n, nil
}

func (r *fakeClientRepo) CountExpiringWithin(ctx context.Context, now time.Time, days int) (int64, error) {
	clients, err := r.FindExpiringWithinDays(ctx, now, days)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, c := range clients {
		if c.Type == ledger.ClientTypeActive {
			n++
		}
	}
	return n, nil
}

type fakeStaffRepo struct {
	staffs map[int64]*ledger.Staff
	nextID int64
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staffs: map[int64]*ledger.Staff{}, nextID: 1}
}

func (r *fakeStaffRepo) Save(_ context.Context, staff *ledger.Staff) error {
	staff.ID = r.nextID
	r.nextID++
	r.staffs[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) FindByID(_ context.Context, id int64) (*ledger.Staff, error) {
	staff, ok := r.staffs[id]
	if !ok {
		return nil, shared.NewNotFoundError("Staff", id)
	}
	return staff, nil
}

func (r *fakeStaffRepo) FindAll(_ context.Context, _ ledger.StaffFilter) ([]*ledger.Staff, int64, error) {
	var out []*ledger.Staff
	for _, s := range r.staffs {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeStaffRepo) Update(_ context.Context, staff *ledger.Staff) error {
	r.staffs[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) Delete(_ context.Context, id int64) error {
	delete(r.staffs, id)
	return nil
}

func (r *fakeStaffRepo) SumMonthlySalaries(_ context.Context) (int64, error) {
	var sum int64
	for _, s := range r.staffs {
		if s.Type == ledger.StaffTypeMonthly && s.IsActive {
			sum += s.MonthlySalaryNrs
		}
	}
	return sum, nil
}

func (r *fakeStaffRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.staffs {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

type fakeWorkItemRepo struct {
	items  map[int64]*ledger.WorkItem
	nextID int64
}

func newFakeWorkItemRepo() *fakeWorkItemRepo {
	return &fakeWorkItemRepo{items: map[int64]*ledger.WorkItem{}, nextID: 1}
}

func (r *fakeWorkItemRepo) Save(_ context.Context, item *ledger.WorkItem) error {
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	return nil
}

func (r *fakeWorkItemRepo) FindByID(_ context.Context, id int64) (*ledger.WorkItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, shared.NewNotFoundError("WorkItem", id)
	}
	return item, nil
}

func (r *fakeWorkItemRepo) FindAll(_ context.Context, _ bool, _, _ int) ([]*ledger.WorkItem, int64, error) {
	var out []*ledger.WorkItem
	for _, i := range r.items {
		out = append(out, i)
	}
	return out, int64(len(out)), nil
}

func (r *fakeWorkItemRepo) Update(_ context.Context, item *ledger.WorkItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeWorkItemRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type fakeStaffWorkRepo struct {
	rows   []*ledger.StaffWork
	nextID int64
}

func newFakeStaffWorkRepo() *fakeStaffWorkRepo {
	return &fakeStaffWorkRepo{nextID: 1}
}

func (r *fakeStaffWorkRepo) Save(_ context.Context, work *ledger.StaffWork) error {
	work.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, work)
	return nil
}

func (r *fakeStaffWorkRepo) FindByID(_ context.Context, id int64) (*ledger.StaffWork, error) {
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, shared.NewNotFoundError("StaffWork", id)
}

func (r *fakeStaffWorkRepo) FindAll(_ context.Context, _ ledger.StaffWorkFilter) ([]*ledger.StaffWork, int64, error) {
	return r.rows, int64(len(r.rows)), nil
}

func (r *fakeStaffWorkRepo) FindForPayout(_ context.Context, from, to time.Time, staffID *int64) ([]*ledger.StaffWork, error) {
	var out []*ledger.StaffWork
	for _, row := range r.rows {
		if row.PerformedAt.Before(from) || !row.PerformedAt.Before(to) {
			continue
		}
		if staffID != nil && row.StaffID != *staffID {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeStaffWorkRepo) Delete(_ context.Context, id int64) error {
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return shared.NewNotFoundError("StaffWork", id)
}

type fakeIncomeRepo struct {
	incomes []*ledger.Income
	clients *fakeClientRepo
	nextID  int64
}

func newFakeIncomeRepo(clients *fakeClientRepo) *fakeIncomeRepo {
	return &fakeIncomeRepo{clients: clients, nextID: 1}
}

func (r *fakeIncomeRepo) Save(_ context.Context, income *ledger.Income) error {
	income.ID = r.nextID
	r.nextID++
	r.incomes = append(r.incomes, income)
	return nil
}

func (r *fakeIncomeRepo) FindByID(_ context.Context, id int64) (*ledger.Income, error) {
	for _, i := range r.incomes {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, shared.NewNotFoundError("Income", id)
}

func (r *fakeIncomeRepo) FindAll(_ context.Context, _ ledger.IncomeFilter) ([]*ledger.Income, int64, error) {
	return r.incomes, int64(len(r.incomes)), nil
}

func (r *fakeIncomeRepo) Update(_ context.Context, _ *ledger.Income) error { return nil }

func (r *fakeIncomeRepo) Delete(_ context.Context, _ int64) error { return nil }

func (r *fakeIncomeRepo) SumAmount(_ context.Context, _, _ *time.Time) (int64, error) {
	var sum int64
	for _, i := range r.incomes {
		sum += i.AmountNrs
	}
	return sum, nil
}

func (r *fakeIncomeRepo) SumAmountByClient(_ context.Context) ([]ledger.ClientIncomeTotal, error) {
	byClient := map[int64]int64{}
	var order []int64
	for _, i := range r.incomes {
		if _, seen := byClient[i.ClientID]; !seen {
			order = append(order, i.ClientID)
		}
		byClient[i.ClientID] += i.AmountNrs
	}
	var out []ledger.ClientIncomeTotal
	for _, id := range order {
		name := ""
		if c, ok := r.clients.clients[id]; ok {
			name = c.Name
		}
		out = append(out, ledger.ClientIncomeTotal{ClientID: id, ClientName: name, TotalNrs: byClient[id]})
	}
	return out, nil
}

type fakeExpenseRepo struct {
	expenses []*ledger.Expense
	nextID   int64
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{nextID: 1}
}

func (r *fakeExpenseRepo) Save(_ context.Context, expense *ledger.Expense) error {
	expense.ID = r.nextID
	r.nextID++
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id int64) (*ledger.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, shared.NewNotFoundError("Expense", id)
}

func (r *fakeExpenseRepo) FindAll(_ context.Context, _ ledger.ExpenseFilter) ([]*ledger.Expense, int64, error) {
	return r.expenses, int64(len(r.expenses)), nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, _ *ledger.Expense) error { return nil }

func (r *fakeExpenseRepo) Delete(_ context.Context, _ int64) error { return nil }

func (r *fakeExpenseRepo) SumAmount(_ context.Context, _, _ *time.Time) (int64, error) {
	var sum int64
	for _, e := range r.expenses {
		sum += e.AmountNrs
	}
	return sum, nil
}

func (r *fakeExpenseRepo) SumAmountBySource(_ context.Context, _, _ *time.Time) (map[ledger.ExpenseSource]int64, error) {
	out := map[ledger.ExpenseSource]int64{}
	for _, e := range r.expenses {
		out[e.Source] += e.AmountNrs
	}
	return out, nil
}

// failingStaffRepo simulates a staff store whose reads fail outright
type failingStaffRepo struct {
	*fakeStaffRepo
	err error
}

func (r *failingStaffRepo) FindByID(_ context.Context, _ int64) (*ledger.Staff, error) {
	return nil, r.err
}

// failingWorkItemRepo simulates a work item store whose reads fail outright
type failingWorkItemRepo struct {
	*fakeWorkItemRepo
	err error
}

func (r *failingWorkItemRepo) FindByID(_ context.Context, _ int64) (*ledger.WorkItem, error) {
	return nil, r.err
}

type fixture struct {
	clients   *fakeClientRepo
	staffs    *fakeStaffRepo
	items     *fakeWorkItemRepo
	staffWork *fakeStaffWorkRepo
	incomes   *fakeIncomeRepo
	expenses  *fakeExpenseRepo
	service   *AccountService
}

func newFixture() *fixture {
	clients := newFakeClientRepo()
	staffs := newFakeStaffRepo()
	items := newFakeWorkItemRepo()
	staffWork := newFakeStaffWorkRepo()
	incomes := newFakeIncomeRepo(clients)
	expenses := newFakeExpenseRepo()
	return &fixture{
		clients:   clients,
		staffs:    staffs,
		items:     items,
		staffWork: staffWork,
		incomes:   incomes,
		expenses:  expenses,
		service:   NewAccountService(clients, staffs, items, staffWork, incomes, expenses, nil, zap.NewNop()),
	}
}

func (f *fixture) addWorkBasisStaff(t *testing.T, name string) *ledger.Staff {
	t.Helper()
	staff, err := ledger.NewStaff(name, "", "", ledger.StaffTypeWorkBasis, 0)
	require.NoError(t, err)
	require.NoError(t, f.staffs.Save(context.Background(), staff))
	return staff
}

func TestGetStaffWorkPayoutPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("sums captured rates per staff", func(t *testing.T) {
		f := newFixture()
		staff := f.addWorkBasisStaff(t, "Ram")

		item, err := ledger.NewWorkItem("Logo design", 500)
		require.NoError(t, err)
		require.NoError(t, f.items.Save(ctx, item))

		performed := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
		catalog, err := ledger.NewCatalogStaffWork(staff.ID, item, nil, 3, performed, "")
		require.NoError(t, err)
		require.NoError(t, f.staffWork.Save(ctx, catalog))

		adhoc, err := ledger.NewAdHocStaffWork(staff.ID, "Event photography", "", nil, 2, 200, performed)
		require.NoError(t, err)
		require.NoError(t, f.staffWork.Save(ctx, adhoc))

		preview, err := f.service.GetStaffWorkPayoutPreview(ctx, 8, 2026, nil)
		require.NoError(t, err)
		require.Len(t, preview.Staffs, 1)
		assert.Empty(t, preview.Warnings)

		payout := preview.Staffs[0]
		assert.Equal(t, staff.ID, payout.StaffID)
		assert.Equal(t, "Ram", payout.StaffName)
		assert.Equal(t, int64(1900), payout.TotalAmount)
		require.Len(t, payout.Works, 2)
		assert.Equal(t, "Logo design", payout.Works[0].WorkItem)
		assert.Equal(t, int64(1500), payout.Works[0].Total)
		assert.Equal(t, "No Client", payout.Works[0].Client)
		assert.Equal(t, "Event photography", payout.Works[1].WorkItem)
		assert.Equal(t, int64(400), payout.Works[1].Total)
	})

	t.Run("month boundary is half open", func(t *testing.T) {
		f := newFixture()
		staff := f.addWorkBasisStaff(t, "Ram")

		lastDay := time.Date(2026, 8, 31, 23, 0, 0, 0, time.Local)
		nextFirst := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

		inRange, err := ledger.NewAdHocStaffWork(staff.ID, "August work", "", nil, 1, 100, lastDay)
		require.NoError(t, err)
		require.NoError(t, f.staffWork.Save(ctx, inRange))
		outOfRange, err := ledger.NewAdHocStaffWork(staff.ID, "September work", "", nil, 1, 100, nextFirst)
		require.NoError(t, err)
		require.NoError(t, f.staffWork.Save(ctx, outOfRange))

		preview, err := f.service.GetStaffWorkPayoutPreview(ctx, 8, 2026, nil)
		require.NoError(t, err)
		require.Len(t, preview.Staffs, 1)
		require.Len(t, preview.Staffs[0].Works, 1)
		assert.Equal(t, "August work", preview.Staffs[0].Works[0].WorkItem)
	})

	t.Run("staff filter returns a subset of the unfiltered preview", func(t *testing.T) {
		f := newFixture()
		ram := f.addWorkBasisStaff(t, "Ram")
		sita := f.addWorkBasisStaff(t, "Sita")

		performed := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
		for _, staffID := range []int64{ram.ID, sita.ID} {
			work, err := ledger.NewAdHocStaffWork(staffID, "Delivery run", "", nil, 1, 300, performed)
			require.NoError(t, err)
			require.NoError(t, f.staffWork.Save(ctx, work))
		}

		all, err := f.service.GetStaffWorkPayoutPreview(ctx, 8, 2026, nil)
		require.NoError(t, err)
		assert.Len(t, all.Staffs, 2)

		only, err := f.service.GetStaffWorkPayoutPreview(ctx, 8, 2026, &sita.ID)
		require.NoError(t, err)
		require.Len(t, only.Staffs, 1)
		assert.Equal(t, sita.ID, only.Staffs[0].StaffID)
		assert.Equal(t, int64(300), only.Staffs[0].TotalAmount)
	})

	t.Run("malformed rows become warnings", func(t *testing.T) {
		f := newFixture()
		staff := f.addWorkBasisStaff(t, "Ram")

		performed := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
		good, err := ledger.NewAdHocStaffWork(staff.ID, "Delivery run", "", nil, 1, 300, performed)
		require.NoError(t, err)
		require.NoError(t, f.staffWork.Save(ctx, good))

		// corrupt row as it would come back from storage
		bad := &ledger.StaffWork{StaffID: staff.ID, Quantity: 1, UnitRateNrs: 100, PerformedAt: performed}
		require.NoError(t, f.staffWork.Save(ctx, bad))

		preview, err := f.service.GetStaffWorkPayoutPreview(ctx, 8, 2026, nil)
		require.NoError(t, err)
		require.Len(t, preview.Warnings, 1)
		require.Len(t, preview.Staffs, 1)
		assert.Equal(t, int64(300), preview.Staffs[0].TotalAmount)
	})

	t.Run("dangling staff reference becomes a warning", func(t *testing.T) {
		f := newFixture()
		staff := f.addWorkBasisStaff(t, "Ram")

		performed := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
		good, err := ledger.NewAdHocStaffWork(staff.ID, "Delivery run", "", nil, 1, 300, performed)
		require.NoError(t, err)
		require.NoError(t, f.staffWork.Save(ctx, good))

		orphan, err := ledger.NewAdHocStaffWork(99, "Ghost work", "", nil, 1, 100, performed)
		require.NoError(t, err)
		require.NoError(t, f.staffWork.Save(ctx, orphan))

		preview, err := f.service.GetStaffWorkPayoutPreview(ctx, 8, 2026, nil)
		require.NoError(t, err)
		require.Len(t, preview.Warnings, 1)
		require.Len(t, preview.Staffs, 1)
		assert.Equal(t, int64(300), preview.Staffs[0].TotalAmount)
	})

	t.Run("staff store failure fails the whole preview", func(t *testing.T) {
		f := newFixture()
		staff := f.addWorkBasisStaff(t, "Ram")

		performed := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
		work, err := ledger.NewAdHocStaffWork(staff.ID, "Delivery run", "", nil, 1, 300, performed)
		require.NoError(t, err)
		require.NoError(t, f.staffWork.Save(ctx, work))

		storeErr := errors.New("connection reset by peer")
		service := NewAccountService(f.clients, &failingStaffRepo{fakeStaffRepo: f.staffs, err: storeErr},
			f.items, f.staffWork, f.incomes, f.expenses, nil, zap.NewNop())

		preview, err := service.GetStaffWorkPayoutPreview(ctx, 8, 2026, nil)
		require.ErrorIs(t, err, storeErr)
		assert.Nil(t, preview)
	})

	t.Run("work item store failure fails the whole preview", func(t *testing.T) {
		f := newFixture()
		staff := f.addWorkBasisStaff(t, "Ram")

		item, err := ledger.NewWorkItem("Logo design", 500)
		require.NoError(t, err)
		require.NoError(t, f.items.Save(ctx, item))

		performed := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
		work, err := ledger.NewCatalogStaffWork(staff.ID, item, nil, 3, performed, "")
		require.NoError(t, err)
		require.NoError(t, f.staffWork.Save(ctx, work))

		storeErr := errors.New("connection reset by peer")
		service := NewAccountService(f.clients, f.staffs,
			&failingWorkItemRepo{fakeWorkItemRepo: f.items, err: storeErr},
			f.staffWork, f.incomes, f.expenses, nil, zap.NewNop())

		preview, err := service.GetStaffWorkPayoutPreview(ctx, 8, 2026, nil)
		require.ErrorIs(t, err, storeErr)
		assert.Nil(t, preview)
	})

	t.Run("monthly staff rejected", func(t *testing.T) {
		f := newFixture()
		staff, err := ledger.NewStaff("Hari", "", "", ledger.StaffTypeMonthly, 30000)
		require.NoError(t, err)
		require.NoError(t, f.staffs.Save(ctx, staff))

		_, err = f.service.GetStaffWorkPayoutPreview(ctx, 8, 2026, &staff.ID)
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "BUSINESS_RULE", domainErr.Code)
	})

	t.Run("invalid month and year rejected", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.GetStaffWorkPayoutPreview(ctx, 0, 2026, nil)
		assert.Error(t, err)
		_, err = f.service.GetStaffWorkPayoutPreview(ctx, 13, 2026, nil)
		assert.Error(t, err)
		_, err = f.service.GetStaffWorkPayoutPreview(ctx, 8, 99, nil)
		assert.Error(t, err)
	})
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("empty dataset yields zero totals", func(t *testing.T) {
		f := newFixture()
		summary, err := f.service.GetSummary(ctx)
		require.NoError(t, err)
		assert.Zero(t, summary.Totals.TotalIncomeNrs)
		assert.Zero(t, summary.Totals.TotalExpenseNrs)
		assert.Zero(t, summary.Totals.NetNrs)
		assert.Empty(t, summary.IncomeByClient)
		assert.Empty(t, summary.ExpenseBySource)
	})

	t.Run("net is income minus expense", func(t *testing.T) {
		f := newFixture()

		client, err := ledger.NewClient("Acme Stores", "", "", "", ledger.ClientTypeActive, time.Now(), 365)
		require.NoError(t, err)
		require.NoError(t, f.clients.Save(ctx, client))

		income, err := ledger.NewIncome("Retainer", 1800, client.ID, time.Now(), "")
		require.NoError(t, err)
		require.NoError(t, f.incomes.Save(ctx, income))

		expense, err := ledger.NewGeneralExpense("Office rent", 600, time.Now(), "")
		require.NoError(t, err)
		require.NoError(t, f.expenses.Save(ctx, expense))

		summary, err := f.service.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1800), summary.Totals.TotalIncomeNrs)
		assert.Equal(t, int64(600), summary.Totals.TotalExpenseNrs)
		assert.Equal(t, int64(1200), summary.Totals.NetNrs)

		require.Len(t, summary.IncomeByClient, 1)
		assert.Equal(t, "Acme Stores", summary.IncomeByClient[0].Name)
		assert.Equal(t, int64(1800), summary.IncomeByClient[0].Total)

		require.Len(t, summary.ExpenseBySource, 1)
		assert.Equal(t, ledger.ExpenseSourceGeneral, summary.ExpenseBySource[0].Source)

		assert.Equal(t, int64(1), summary.Counts.ActiveClients)
		assert.Equal(t, summary.Counts.ActiveClients, summary.Counts.OpenContracts)
	})

	t.Run("income breakdown adds up to the income total", func(t *testing.T) {
		f := newFixture()

		clientA, err := ledger.NewClient("Acme Stores", "", "", "", ledger.ClientTypeActive, time.Now(), 365)
		require.NoError(t, err)
		require.NoError(t, f.clients.Save(ctx, clientA))
		clientB, err := ledger.NewClient("Bharat Supplies", "", "", "", ledger.ClientTypeActive, time.Now(), 365)
		require.NoError(t, err)
		require.NoError(t, f.clients.Save(ctx, clientB))

		for _, row := range []struct {
			clientID int64
			amount   int64
		}{
			{clientA.ID, 1000}, {clientA.ID, 500}, {clientB.ID, 300},
		} {
			income, err := ledger.NewIncome("Retainer", row.amount, row.clientID, time.Now(), "")
			require.NoError(t, err)
			require.NoError(t, f.incomes.Save(ctx, income))
		}

		summary, err := f.service.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1800), summary.Totals.TotalIncomeNrs)

		var byClient int64
		for _, row := range summary.IncomeByClient {
			byClient += row.Total
		}
		assert.Equal(t, summary.Totals.TotalIncomeNrs, byClient)

		require.Len(t, summary.IncomeByClient, 2)
		assert.Equal(t, int64(1500), summary.IncomeByClient[0].Total)
		assert.Equal(t, "Acme Stores", summary.IncomeByClient[0].Name)
		assert.Equal(t, int64(300), summary.IncomeByClient[1].Total)
	})

	t.Run("expense breakdown adds up to the expense total", func(t *testing.T) {
		f := newFixture()
		staff, err := ledger.NewStaff("Hari", "", "", ledger.StaffTypeMonthly, 30000)
		require.NoError(t, err)
		require.NoError(t, f.staffs.Save(ctx, staff))

		salary, err := ledger.NewStaffExpense("August salary", 30000, ledger.ExpenseSourceStaffMonthly, staff.ID, time.Now(), "")
		require.NoError(t, err)
		require.NoError(t, f.expenses.Save(ctx, salary))
		rent, err := ledger.NewGeneralExpense("Office rent", 600, time.Now(), "")
		require.NoError(t, err)
		require.NoError(t, f.expenses.Save(ctx, rent))

		summary, err := f.service.GetSummary(ctx)
		require.NoError(t, err)

		var bySource int64
		for _, row := range summary.ExpenseBySource {
			bySource += row.Total
		}
		assert.Equal(t, summary.Totals.TotalExpenseNrs, bySource)
	})
}

func TestAdjustClientAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	client, err := ledger.NewClient("Acme Stores", "", "", "", ledger.ClientTypeActive, time.Now(), 365)
	require.NoError(t, err)
	require.NoError(t, f.clients.Save(ctx, client))

	adjusted, err := f.service.AdjustClientAccount(ctx, client.ID, 1800, 600)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), adjusted.LockedAmountNrs)
	assert.Equal(t, int64(600), adjusted.AdvanceAmountNrs)
	assert.Equal(t, int64(1200), adjusted.DueAmountNrs)

	// identity holds across arbitrary delta sequences, negatives included
	deltas := []struct{ locked, advance int64 }{
		{-500, 0}, {0, -200}, {250, 250}, {-2000, 100},
	}
	for _, d := range deltas {
		adjusted, err = f.service.AdjustClientAccount(ctx, client.ID, d.locked, d.advance)
		require.NoError(t, err)
		assert.Equal(t, adjusted.LockedAmountNrs-adjusted.AdvanceAmountNrs, adjusted.DueAmountNrs)
	}

	_, err = f.service.AdjustClientAccount(ctx, 9999, 1, 1)
	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
