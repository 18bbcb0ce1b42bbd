package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyContractUrgency(t *testing.T) {
	tests := []struct {
		name          string
		totalDays     int
		daysRemaining int
		wantPriority  ReminderPriority
		wantStage     ReminderStage
	}{
		{
			name:          "early in contract",
			totalDays:     100,
			daysRemaining: 80,
			wantPriority:  ReminderPriorityMedium,
			wantStage:     ReminderStageInitial,
		},
		{
			name:          "just past halfway",
			totalDays:     100,
			daysRemaining: 50,
			wantPriority:  ReminderPriorityHigh,
			wantStage:     ReminderStageMidpoint,
		},
		{
			name:          "inside last half",
			totalDays:     100,
			daysRemaining: 30,
			wantPriority:  ReminderPriorityHigh,
			wantStage:     ReminderStageMidpoint,
		},
		{
			name:          "exactly at last quarter",
			totalDays:     100,
			daysRemaining: 25,
			wantPriority:  ReminderPriorityUrgent,
			wantStage:     ReminderStageFinal,
		},
		{
			name:          "deep in last quarter",
			totalDays:     100,
			daysRemaining: 3,
			wantPriority:  ReminderPriorityUrgent,
			wantStage:     ReminderStageFinal,
		},
		{
			name:          "contract already ended",
			totalDays:     100,
			daysRemaining: -2,
			wantPriority:  ReminderPriorityUrgent,
			wantStage:     ReminderStageFinal,
		},
		{
			name:          "short contract rounds thresholds down",
			totalDays:     30,
			daysRemaining: 7,
			wantPriority:  ReminderPriorityUrgent,
			wantStage:     ReminderStageFinal,
		},
		{
			name:          "short contract midpoint",
			totalDays:     30,
			daysRemaining: 12,
			wantPriority:  ReminderPriorityHigh,
			wantStage:     ReminderStageMidpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priority, stage := ClassifyContractUrgency(tt.totalDays, tt.daysRemaining)
			assert.Equal(t, tt.wantPriority, priority)
			assert.Equal(t, tt.wantStage, stage)
		})
	}
}

func TestReminderStageRank(t *testing.T) {
	assert.Less(t, ReminderStageInitial.Rank(), ReminderStageMidpoint.Rank())
	assert.Less(t, ReminderStageMidpoint.Rank(), ReminderStageFinal.Rank())
}

func TestNewContractReminder(t *testing.T) {
	due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid contract reminder", func(t *testing.T) {
		r, err := NewContractReminder("Contract expiring", "Client Acme contract ends soon", ReminderPriorityUrgent, ReminderStageFinal, 7, due)
		require.NoError(t, err)
		require.NotNil(t, r.Stage)
		assert.Equal(t, ReminderStageFinal, *r.Stage)
		require.NotNil(t, r.ClientID)
		assert.Equal(t, int64(7), *r.ClientID)
		assert.Equal(t, ReminderTypeContractExpiry, r.Type)
		assert.False(t, r.IsCompleted)
	})

	t.Run("missing client", func(t *testing.T) {
		_, err := NewContractReminder("Contract expiring", "", ReminderPriorityUrgent, ReminderStageFinal, 0, due)
		assert.Error(t, err)
	})
}

func TestAdminReminderComplete(t *testing.T) {
	r, err := NewAdminReminder("File taxes", "Quarterly filing", ReminderPriorityHigh, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ReminderTypeGeneral, r.Type)

	require.NoError(t, r.Complete())
	assert.True(t, r.IsCompleted)

	err = r.Complete()
	assert.Error(t, err)
}
