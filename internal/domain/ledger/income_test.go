package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIncome(t *testing.T) {
	received := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	income, err := NewIncome("Retainer", 1500, 7, received, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), income.ClientID)
	assert.Equal(t, int64(1500), income.AmountNrs)

	tests := []struct {
		name        string
		description string
		amount      int64
		clientID    int64
	}{
		{"empty description", "", 1500, 7},
		{"zero amount", "Retainer", 0, 7},
		{"negative amount", "Retainer", -100, 7},
		{"no client attribution", "Retainer", 1500, 0},
		{"negative client id", "Retainer", 1500, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIncome(tt.description, tt.amount, tt.clientID, received, "")
			assert.Error(t, err)
		})
	}
}

func TestIncomeUpdate(t *testing.T) {
	received := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	income, err := NewIncome("Retainer", 1500, 7, received, "")
	require.NoError(t, err)

	require.NoError(t, income.Update("August retainer", 2000, 9, received, "revised"))
	assert.Equal(t, int64(9), income.ClientID)
	assert.Equal(t, int64(2000), income.AmountNrs)

	// attribution cannot be dropped on update either
	assert.Error(t, income.Update("August retainer", 2000, 0, received, ""))
}
