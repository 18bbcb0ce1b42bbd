package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogStaffWork(t *testing.T) {
	item, err := NewWorkItem("Logo design", 500)
	require.NoError(t, err)
	item.ID = 4

	workDate := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	work, err := NewCatalogStaffWork(2, item, nil, 3, workDate, "")
	require.NoError(t, err)

	require.NotNil(t, work.WorkItemID)
	assert.Equal(t, int64(4), *work.WorkItemID)
	assert.Equal(t, int64(500), work.UnitRateNrs)
	assert.Equal(t, int64(1500), work.AmountNrs())

	// later catalog rate change does not touch the captured rate
	require.NoError(t, item.Update("Logo design", 900, true))
	assert.Equal(t, int64(500), work.UnitRateNrs)
}

func TestNewAdHocStaffWork(t *testing.T) {
	workDate := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	work, err := NewAdHocStaffWork(2, "Event photography", "half day", nil, 2, 200, workDate)
	require.NoError(t, err)
	assert.Nil(t, work.WorkItemID)
	assert.Equal(t, int64(400), work.AmountNrs())

	_, err = NewAdHocStaffWork(2, "", "", nil, 2, 200, workDate)
	assert.Error(t, err)

	_, err = NewAdHocStaffWork(2, "Event photography", "", nil, 0, 200, workDate)
	assert.Error(t, err)
}

func TestStaffWorkValidate(t *testing.T) {
	itemID := int64(4)

	tests := []struct {
		name    string
		work    StaffWork
		wantErr bool
	}{
		{
			name: "catalog row",
			work: StaffWork{StaffID: 2, WorkItemID: &itemID, Quantity: 1, UnitRateNrs: 500},
		},
		{
			name: "ad-hoc row",
			work: StaffWork{StaffID: 2, Title: "Event photography", Quantity: 1, UnitRateNrs: 200},
		},
		{
			name:    "neither reference nor title",
			work:    StaffWork{StaffID: 2, Quantity: 1, UnitRateNrs: 500},
			wantErr: true,
		},
		{
			// a row carrying both is fully computable and stays payable
			name: "both reference and title",
			work: StaffWork{StaffID: 2, WorkItemID: &itemID, Title: "Event photography", Quantity: 1, UnitRateNrs: 500},
		},
		{
			name:    "zero quantity",
			work:    StaffWork{StaffID: 2, WorkItemID: &itemID, Quantity: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.work.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
