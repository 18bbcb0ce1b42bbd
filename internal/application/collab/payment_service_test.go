package collab

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/collab"
	"github.com/karobar/backoffice/internal/domain/shared"
)

type fakePaymentRepo struct {
	payments map[int64]*collab.Payment
	nextID   int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int64]*collab.Payment{}, nextID: 1}
}

func (r *fakePaymentRepo) Save(_ context.Context, payment *collab.Payment) error {
	payment.ID = r.nextID
	r.nextID++
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id int64) (*collab.Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, shared.NewNotFoundError("Payment", id)
	}
	return payment, nil
}

func (r *fakePaymentRepo) FindAll(_ context.Context, _ collab.PaymentFilter) ([]*collab.Payment, int64, error) {
	var out []*collab.Payment
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) FindPendingDueBefore(_ context.Context, cutoff time.Time) ([]*collab.Payment, error) {
	var out []*collab.Payment
	for _, p := range r.payments {
		if p.Status == collab.PaymentStatusPending && p.DueDate.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, payment *collab.Payment) error {
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id int64) error {
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) SumOutstanding(_ context.Context) (int64, error) {
	var sum int64
	for _, p := range r.payments {
		if p.Status == collab.PaymentStatusPending || p.Status == collab.PaymentStatusOverdue {
			sum += p.AmountNrs
		}
	}
	return sum, nil
}

type fakeCollaborationRepo struct {
	collaborations map[int64]*collab.Collaboration
	nextID         int64
}

func newFakeCollaborationRepo() *fakeCollaborationRepo {
	return &fakeCollaborationRepo{collaborations: map[int64]*collab.Collaboration{}, nextID: 1}
}

func (r *fakeCollaborationRepo) Save(_ context.Context, c *collab.Collaboration) error {
	c.ID = r.nextID
	r.nextID++
	r.collaborations[c.ID] = c
	return nil
}

func (r *fakeCollaborationRepo) FindByID(_ context.Context, id int64) (*collab.Collaboration, error) {
	c, ok := r.collaborations[id]
	if !ok {
		return nil, shared.NewNotFoundError("Collaboration", id)
	}
	return c, nil
}

func (r *fakeCollaborationRepo) FindAll(_ context.Context, _ collab.CollaborationFilter) ([]*collab.Collaboration, int64, error) {
	var out []*collab.Collaboration
	for _, c := range r.collaborations {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCollaborationRepo) Update(_ context.Context, c *collab.Collaboration) error {
	r.collaborations[c.ID] = c
	return nil
}

func (r *fakeCollaborationRepo) Delete(_ context.Context, id int64) error {
	delete(r.collaborations, id)
	return nil
}

func TestPaymentServiceSweepOverdue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 2, 0, 0, 0, time.UTC)

	payments := newFakePaymentRepo()
	collaborations := newFakeCollaborationRepo()
	service := NewPaymentService(payments, collaborations, zap.NewNop())

	collaboration, err := collab.NewCollaboration(1, "Festival campaign", "", 20000, nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, collaborations.Save(ctx, collaboration))

	overdue, err := service.CreatePayment(ctx, collaboration.ID, 5000, now.AddDate(0, 0, -3), "")
	require.NoError(t, err)
	notYetDue, err := service.CreatePayment(ctx, collaboration.ID, 5000, now.AddDate(0, 0, 3), "")
	require.NoError(t, err)

	swept, err := service.SweepOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	assert.Equal(t, collab.PaymentStatusOverdue, overdue.Status)
	assert.Equal(t, collab.PaymentStatusPending, notYetDue.Status)

	// sweep is idempotent
	swept, err = service.SweepOverdue(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, swept)
}

func TestPaymentServiceCreateRequiresCollaboration(t *testing.T) {
	ctx := context.Background()
	service := NewPaymentService(newFakePaymentRepo(), newFakeCollaborationRepo(), zap.NewNop())

	_, err := service.CreatePayment(ctx, 42, 5000, time.Now(), "")
	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestPaymentServicePayAndCancel(t *testing.T) {
	ctx := context.Background()
	payments := newFakePaymentRepo()
	collaborations := newFakeCollaborationRepo()
	service := NewPaymentService(payments, collaborations, zap.NewNop())

	collaboration, err := collab.NewCollaboration(1, "Festival campaign", "", 20000, nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, collaborations.Save(ctx, collaboration))

	payment, err := service.CreatePayment(ctx, collaboration.ID, 5000, time.Now().AddDate(0, 0, 7), "")
	require.NoError(t, err)

	paid, err := service.PayPayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, collab.PaymentStatusPaid, paid.Status)

	_, err = service.CancelPayment(ctx, payment.ID)
	require.Error(t, err)
}
