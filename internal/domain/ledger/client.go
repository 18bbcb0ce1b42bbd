package ledger

import (
	"time"

	"github.com/karobar/backoffice/internal/domain/shared"
)

// ClientType represents the lifecycle state of a client relationship
type ClientType string

const (
	ClientTypeProspect ClientType = "PROSPECT"
	ClientTypeActive   ClientType = "ACTIVE"
	ClientTypeInactive ClientType = "INACTIVE"
)

// IsValid checks if the type is a valid ClientType
func (t ClientType) IsValid() bool {
	switch t {
	case ClientTypeProspect, ClientTypeActive, ClientTypeInactive:
		return true
	}
	return false
}

// String returns the string representation of ClientType
func (t ClientType) String() string {
	return string(t)
}

// Client represents a contracted client and its running account balances.
// All amounts are integer Nepalese rupees.
//
// Invariant: DueAmountNrs == LockedAmountNrs - AdvanceAmountNrs after every
// mutation.
type Client struct {
	shared.BaseEntity
	Name                 string         `json:"name"`
	Email                string         `json:"email"`
	Phone                string         `json:"phone"`
	Address              string         `json:"address"`
	Type                 ClientType     `json:"type"`
	ContractStartDate    time.Time      `json:"contract_start_date"`
	ContractDurationDays int            `json:"contract_duration_days"`
	LockedAmountNrs      int64          `json:"locked_amount_nrs"`
	AdvanceAmountNrs     int64          `json:"advance_amount_nrs"`
	DueAmountNrs         int64          `json:"due_amount_nrs"`
	LastReminderStage    *ReminderStage `json:"last_reminder_stage,omitempty"`
}

// NewClient creates a new client
func NewClient(name, email, phone, address string, clientType ClientType, contractStart time.Time, durationDays int) (*Client, error) {
	if name == "" {
		return nil, shared.NewValidationError("Client name cannot be empty")
	}
	if !clientType.IsValid() {
		return nil, shared.NewValidationError("Client type is not valid")
	}
	if durationDays < 0 {
		return nil, shared.NewValidationError("Contract duration cannot be negative")
	}

	return &Client{
		BaseEntity:           shared.NewBaseEntity(),
		Name:                 name,
		Email:                email,
		Phone:                phone,
		Address:              address,
		Type:                 clientType,
		ContractStartDate:    contractStart,
		ContractDurationDays: durationDays,
	}, nil
}

// ContractEndDate returns the computed end of the contract.
// Expiry windows anchor here, not on the start date.
func (c *Client) ContractEndDate() time.Time {
	return c.ContractStartDate.AddDate(0, 0, c.ContractDurationDays)
}

// DaysRemaining returns whole days between now and the contract end date.
// Negative when the contract has already ended.
func (c *Client) DaysRemaining(now time.Time) int {
	return int(c.ContractEndDate().Sub(now).Hours() / 24)
}

// AdjustBalances applies signed deltas to the locked and advance balances,
// keeping the due balance consistent. Deltas may be negative and balances may
// go below zero; that is accepted business behavior.
func (c *Client) AdjustBalances(lockedDelta, advanceDelta int64) {
	c.LockedAmountNrs += lockedDelta
	c.AdvanceAmountNrs += advanceDelta
	c.DueAmountNrs += lockedDelta - advanceDelta
	c.Touch()
}

// RecordReminderStage records the most recently fired reminder stage so the
// daily scan never fires the same stage twice for one contract.
func (c *Client) RecordReminderStage(stage ReminderStage) {
	c.LastReminderStage = &stage
	c.Touch()
}

// Update replaces the editable client fields
func (c *Client) Update(name, email, phone, address string, clientType ClientType, contractStart time.Time, durationDays int) error {
	if name == "" {
		return shared.NewValidationError("Client name cannot be empty")
	}
	if !clientType.IsValid() {
		return shared.NewValidationError("Client type is not valid")
	}
	if durationDays < 0 {
		return shared.NewValidationError("Contract duration cannot be negative")
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.Type = clientType
	c.ContractStartDate = contractStart
	c.ContractDurationDays = durationDays
	c.Touch()
	return nil
}
