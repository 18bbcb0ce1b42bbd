package collab

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLifecycle(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("pay pending payment", func(t *testing.T) {
		p, err := NewPayment(1, 5000, due, "")
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPending, p.Status)

		paidAt := due.AddDate(0, 0, -3)
		require.NoError(t, p.MarkPaid(paidAt))
		assert.Equal(t, PaymentStatusPaid, p.Status)
		require.NotNil(t, p.PaidAt)

		assert.Error(t, p.MarkPaid(paidAt))
		assert.Error(t, p.Cancel())
	})

	t.Run("overdue then paid", func(t *testing.T) {
		p, err := NewPayment(1, 5000, due, "")
		require.NoError(t, err)

		require.NoError(t, p.MarkOverdue(due.AddDate(0, 0, 1)))
		assert.Equal(t, PaymentStatusOverdue, p.Status)

		require.NoError(t, p.MarkPaid(due.AddDate(0, 0, 2)))
		assert.Equal(t, PaymentStatusPaid, p.Status)
	})

	t.Run("not yet due cannot become overdue", func(t *testing.T) {
		p, err := NewPayment(1, 5000, due, "")
		require.NoError(t, err)
		assert.Error(t, p.MarkOverdue(due.AddDate(0, 0, -1)))
	})

	t.Run("cancel pending", func(t *testing.T) {
		p, err := NewPayment(1, 5000, due, "")
		require.NoError(t, err)
		require.NoError(t, p.Cancel())
		assert.Equal(t, PaymentStatusCancelled, p.Status)
		assert.Error(t, p.Cancel())
	})
}

func TestCollaborationLifecycle(t *testing.T) {
	c, err := NewCollaboration(3, "Festival campaign", "", 20000, nil, nil, "2 reels, 1 story")
	require.NoError(t, err)
	assert.Equal(t, CollaborationStatusDraft, c.Status)

	assert.Error(t, c.Complete())

	require.NoError(t, c.Activate())
	assert.Error(t, c.Activate())

	require.NoError(t, c.Complete())
	assert.Error(t, c.Cancel())
	assert.Error(t, c.Update("New title", "", 1, nil, nil, ""))
}
