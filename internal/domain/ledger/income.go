package ledger

import (
	"time"

	"github.com/karobar/backoffice/internal/domain/shared"
)

// Income represents money received from a client. Every income row is
// attributed to exactly one client, so the per-client breakdown always adds
// up to the income total.
type Income struct {
	shared.BaseEntity
	Description string    `json:"description"`
	AmountNrs   int64     `json:"amount_nrs"`
	ClientID    int64     `json:"client_id"`
	ReceivedAt  time.Time `json:"received_at"`
	Notes       string    `json:"notes"`
}

// NewIncome creates a new income record
func NewIncome(description string, amountNrs int64, clientID int64, receivedAt time.Time, notes string) (*Income, error) {
	if description == "" {
		return nil, shared.NewValidationError("Income description cannot be empty")
	}
	if amountNrs <= 0 {
		return nil, shared.NewValidationError("Income amount must be positive")
	}
	if clientID <= 0 {
		return nil, shared.NewValidationError("Income must be attributed to a client")
	}

	return &Income{
		BaseEntity:  shared.NewBaseEntity(),
		Description: description,
		AmountNrs:   amountNrs,
		ClientID:    clientID,
		ReceivedAt:  receivedAt,
		Notes:       notes,
	}, nil
}

// Update replaces the editable income fields
func (i *Income) Update(description string, amountNrs int64, clientID int64, receivedAt time.Time, notes string) error {
	if description == "" {
		return shared.NewValidationError("Income description cannot be empty")
	}
	if amountNrs <= 0 {
		return shared.NewValidationError("Income amount must be positive")
	}
	if clientID <= 0 {
		return shared.NewValidationError("Income must be attributed to a client")
	}

	i.Description = description
	i.AmountNrs = amountNrs
	i.ClientID = clientID
	i.ReceivedAt = receivedAt
	i.Notes = notes
	i.Touch()
	return nil
}
