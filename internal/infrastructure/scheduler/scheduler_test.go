package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseDailyCron(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "default schedule", expr: "0 2 * * *", wantHour: 2, wantMinute: 0},
		{name: "late evening", expr: "30 23 * * *", wantHour: 23, wantMinute: 30},
		{name: "too few fields", expr: "0 2 * *", wantErr: true},
		{name: "weekly not supported", expr: "0 2 * * 1", wantErr: true},
		{name: "minute out of range", expr: "60 2 * * *", wantErr: true},
		{name: "hour out of range", expr: "0 24 * * *", wantErr: true},
		{name: "non numeric", expr: "a b * * *", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := parseDailyCron(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestShouldRun(t *testing.T) {
	s, err := New("0 2 * * *", zap.NewNop())
	require.NoError(t, err)

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 10, hour, minute, 5, 0, time.UTC)
	}

	assert.True(t, s.shouldRun(at(2, 0), time.Time{}))
	assert.False(t, s.shouldRun(at(2, 1), time.Time{}))
	assert.False(t, s.shouldRun(at(3, 0), time.Time{}))

	// A second tick inside the same minute must not fire again.
	first := at(2, 0)
	assert.False(t, s.shouldRun(first.Add(30*time.Second), first))

	// The next day fires again.
	assert.True(t, s.shouldRun(first.Add(24*time.Hour), first))
}
