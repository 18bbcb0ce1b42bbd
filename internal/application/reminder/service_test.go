package reminder

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

type fakeReminderRepo struct {
	reminders map[int64]*ledger.AdminReminder
	nextID    int64
	saveErrOn map[int64]bool // client IDs whose saves fail
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: map[int64]*ledger.AdminReminder{}, nextID: 1, saveErrOn: map[int64]bool{}}
}

func (r *fakeReminderRepo) Save(_ context.Context, reminder *ledger.AdminReminder) error {
	if reminder.ClientID != nil && r.saveErrOn[*reminder.ClientID] {
		return errors.New("storage unavailable")
	}
	reminder.ID = r.nextID
	r.nextID++
	r.reminders[reminder.ID] = reminder
	return nil
}

func (r *fakeReminderRepo) FindByID(_ context.Context, id int64) (*ledger.AdminReminder, error) {
	reminder, ok := r.reminders[id]
	if !ok {
		return nil, shared.NewNotFoundError("AdminReminder", id)
	}
	return reminder, nil
}

func (r *fakeReminderRepo) FindAll(_ context.Context, filter ledger.ReminderFilter) ([]*ledger.AdminReminder, int64, error) {
	var out []*ledger.AdminReminder
	for _, reminder := range r.reminders {
		if filter.PendingOnly && reminder.IsCompleted {
			continue
		}
		out = append(out, reminder)
	}
	return out, int64(len(out)), nil
}

func (r *fakeReminderRepo) Update(_ context.Context, reminder *ledger.AdminReminder) error {
	r.reminders[reminder.ID] = reminder
	return nil
}

func (r *fakeReminderRepo) Delete(_ context.Context, id int64) error {
	delete(r.reminders, id)
	return nil
}

func (r *fakeReminderRepo) CountPending(_ context.Context) (int64, error) {
	var n int64
	for _, reminder := range r.reminders {
		if !reminder.IsCompleted {
			n++
		}
	}
	return n, nil
}

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
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) AdjustBalances(_ context.Context, id, lockedDelta, advanceDelta int64) (*ledger.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, shared.NewNotFoundError("Client", id)
	}
	client.AdjustBalances(lockedDelta, advanceDelta)
	return client, nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id int64) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) SumBalances(_ context.Context) (*ledger.ClientBalanceTotals, error) {
	return &ledger.ClientBalanceTotals{}, nil
}

func (r *fakeClientRepo) CountByType(_ context.Context, _ ledger.ClientType) (int64, error) {
	return int64(len(r.clients)), nil
}

func (r *fakeClientRepo) CountExpiringWithin(_ context.Context, _ time.Time, _ int) (int64, error) {
	return 0, nil
}

type recordingNotifier struct {
	subjects []string
	fail     bool
}

func (n *recordingNotifier) Notify(_ context.Context, subject, _ string) error {
	if n.fail {
		return errors.New("smtp unreachable")
	}
	n.subjects = append(n.subjects, subject)
	return nil
}

func addClient(t *testing.T, repo *fakeClientRepo, name string, start time.Time, durationDays int) *ledger.Client {
	t.Helper()
	client, err := ledger.NewClient(name, "", "", "", ledger.ClientTypeActive, start, durationDays)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), client))
	return client
}

func TestRunContractExpiryScan(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	t.Run("creates staged reminder and records stage", func(t *testing.T) {
		reminders := newFakeReminderRepo()
		clients := newFakeClientRepo()
		notifier := &recordingNotifier{}
		service := NewReminderService(reminders, clients, notifier, zap.NewNop())

		// 100-day contract with 20 days remaining: last quarter
		client := addClient(t, clients, "Acme Stores", now.AddDate(0, 0, -80), 100)

		result, err := service.RunContractExpiryScan(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Scanned)
		assert.Equal(t, 1, result.Created)

		require.Len(t, reminders.reminders, 1)
		var created *ledger.AdminReminder
		for _, r := range reminders.reminders {
			created = r
		}
		assert.Equal(t, ledger.ReminderTypeContractExpiry, created.Type)
		assert.Equal(t, ledger.ReminderPriorityUrgent, created.Priority)
		require.NotNil(t, created.Stage)
		assert.Equal(t, ledger.ReminderStageFinal, *created.Stage)
		require.NotNil(t, created.DueDate)
		assert.Equal(t, client.ContractEndDate(), *created.DueDate)

		require.NotNil(t, client.LastReminderStage)
		assert.Equal(t, ledger.ReminderStageFinal, *client.LastReminderStage)
		assert.Len(t, notifier.subjects, 1)
	})

	t.Run("same stage never fires twice", func(t *testing.T) {
		reminders := newFakeReminderRepo()
		clients := newFakeClientRepo()
		service := NewReminderService(reminders, clients, nil, zap.NewNop())

		addClient(t, clients, "Acme Stores", now.AddDate(0, 0, -80), 100)

		first, err := service.RunContractExpiryScan(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Created)

		second, err := service.RunContractExpiryScan(ctx, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 0, second.Created)
		assert.Equal(t, 1, second.Skipped)
		assert.Len(t, reminders.reminders, 1)
	})

	t.Run("stage advances when the window tightens", func(t *testing.T) {
		reminders := newFakeReminderRepo()
		clients := newFakeClientRepo()
		service := NewReminderService(reminders, clients, nil, zap.NewNop())

		// 60-day contract with 28 days remaining: midpoint window
		addClient(t, clients, "Acme Stores", now.AddDate(0, 0, -32), 60)

		first, err := service.RunContractExpiryScan(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Created)

		// two weeks later only 14 days remain: final window
		later := now.AddDate(0, 0, 14)
		second, err := service.RunContractExpiryScan(ctx, later)
		require.NoError(t, err)
		assert.Equal(t, 1, second.Created)
		assert.Len(t, reminders.reminders, 2)
	})

	t.Run("notification failure does not undo the reminder", func(t *testing.T) {
		reminders := newFakeReminderRepo()
		clients := newFakeClientRepo()
		notifier := &recordingNotifier{fail: true}
		service := NewReminderService(reminders, clients, notifier, zap.NewNop())

		client := addClient(t, clients, "Acme Stores", now.AddDate(0, 0, -80), 100)

		result, err := service.RunContractExpiryScan(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Len(t, reminders.reminders, 1)
		require.NotNil(t, client.LastReminderStage)
	})

	t.Run("one failing client does not abort the scan", func(t *testing.T) {
		reminders := newFakeReminderRepo()
		clients := newFakeClientRepo()
		service := NewReminderService(reminders, clients, nil, zap.NewNop())

		broken := addClient(t, clients, "Broken Co", now.AddDate(0, 0, -80), 100)
		addClient(t, clients, "Acme Stores", now.AddDate(0, 0, -80), 100)
		reminders.saveErrOn[broken.ID] = true

		result, err := service.RunContractExpiryScan(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Scanned)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Skipped)
	})
}

func TestDryRunExpiryScan(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	reminders := newFakeReminderRepo()
	clients := newFakeClientRepo()
	service := NewReminderService(reminders, clients, nil, zap.NewNop())

	addClient(t, clients, "Acme Stores", now.AddDate(0, 0, -80), 100)

	result, err := service.DryRunExpiryScan(ctx, now)
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	candidate := result.Candidates[0]
	assert.Equal(t, ledger.ReminderPriorityUrgent, candidate.Priority)
	assert.Equal(t, ledger.ReminderStageFinal, candidate.Stage)
	assert.True(t, candidate.WouldCreate)

	// dry run writes nothing
	assert.Empty(t, reminders.reminders)
}
