package ledger

import (
	"time"

	"github.com/karobar/backoffice/internal/domain/shared"
)

// ReminderType classifies what an admin reminder is about
type ReminderType string

const (
	ReminderTypeGeneral        ReminderType = "GENERAL"
	ReminderTypeContractExpiry ReminderType = "CONTRACT_EXPIRY"
)

// IsValid checks if the type is a valid ReminderType
func (t ReminderType) IsValid() bool {
	switch t {
	case ReminderTypeGeneral, ReminderTypeContractExpiry:
		return true
	}
	return false
}

// String returns the string representation of ReminderType
func (t ReminderType) String() string {
	return string(t)
}

// ReminderPriority represents how urgent an admin reminder is
type ReminderPriority string

const (
	ReminderPriorityLow    ReminderPriority = "LOW"
	ReminderPriorityMedium ReminderPriority = "MEDIUM"
	ReminderPriorityHigh   ReminderPriority = "HIGH"
	ReminderPriorityUrgent ReminderPriority = "URGENT"
)

// IsValid checks if the priority is a valid ReminderPriority
func (p ReminderPriority) IsValid() bool {
	switch p {
	case ReminderPriorityLow, ReminderPriorityMedium, ReminderPriorityHigh, ReminderPriorityUrgent:
		return true
	}
	return false
}

// String returns the string representation of ReminderPriority
func (p ReminderPriority) String() string {
	return string(p)
}

// ReminderStage marks how far into the expiry window a contract reminder is
type ReminderStage string

const (
	ReminderStageInitial  ReminderStage = "INITIAL"
	ReminderStageMidpoint ReminderStage = "MIDPOINT"
	ReminderStageFinal    ReminderStage = "FINAL"
)

// IsValid checks if the stage is a valid ReminderStage
func (s ReminderStage) IsValid() bool {
	switch s {
	case ReminderStageInitial, ReminderStageMidpoint, ReminderStageFinal:
		return true
	}
	return false
}

// String returns the string representation of ReminderStage
func (s ReminderStage) String() string {
	return string(s)
}

// Rank orders stages for dedup: a stage only fires when it outranks the last
// stage recorded on the client.
func (s ReminderStage) Rank() int {
	switch s {
	case ReminderStageInitial:
		return 1
	case ReminderStageMidpoint:
		return 2
	case ReminderStageFinal:
		return 3
	}
	return 0
}

// AdminReminder represents a staged to-do for the administrator. Scan-created
// reminders have type CONTRACT_EXPIRY and reference the client whose contract
// is expiring; manual reminders are GENERAL.
type AdminReminder struct {
	shared.BaseEntity
	Type        ReminderType     `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Priority    ReminderPriority `json:"priority"`
	Stage       *ReminderStage   `json:"stage,omitempty"`
	ClientID    *int64           `json:"client_id,omitempty"`
	StaffID     *int64           `json:"staff_id,omitempty"`
	DueDate     *time.Time       `json:"due_date,omitempty"`
	IsCompleted bool             `json:"is_completed"`
}

// NewAdminReminder creates a manual reminder
func NewAdminReminder(title, message string, priority ReminderPriority, dueDate *time.Time, clientID, staffID *int64) (*AdminReminder, error) {
	if title == "" {
		return nil, shared.NewValidationError("Reminder title cannot be empty")
	}
	if !priority.IsValid() {
		return nil, shared.NewValidationError("Reminder priority is not valid")
	}
	if clientID != nil && *clientID <= 0 {
		return nil, shared.NewValidationError("Client ID is not valid")
	}
	if staffID != nil && *staffID <= 0 {
		return nil, shared.NewValidationError("Staff ID is not valid")
	}

	return &AdminReminder{
		BaseEntity: shared.NewBaseEntity(),
		Type:       ReminderTypeGeneral,
		Title:      title,
		Message:    message,
		Priority:   priority,
		DueDate:    dueDate,
		ClientID:   clientID,
		StaffID:    staffID,
	}, nil
}

// NewContractReminder creates a scan-generated reminder for an expiring
// contract, carrying the stage and client reference.
func NewContractReminder(title, message string, priority ReminderPriority, stage ReminderStage, clientID int64, dueDate time.Time) (*AdminReminder, error) {
	if title == "" {
		return nil, shared.NewValidationError("Reminder title cannot be empty")
	}
	if !priority.IsValid() {
		return nil, shared.NewValidationError("Reminder priority is not valid")
	}
	if !stage.IsValid() {
		return nil, shared.NewValidationError("Reminder stage is not valid")
	}
	if clientID <= 0 {
		return nil, shared.NewValidationError("Client ID is required")
	}

	return &AdminReminder{
		BaseEntity: shared.NewBaseEntity(),
		Type:       ReminderTypeContractExpiry,
		Title:      title,
		Message:    message,
		Priority:   priority,
		Stage:      &stage,
		ClientID:   &clientID,
		DueDate:    &dueDate,
	}, nil
}

// Complete marks the reminder as done
func (r *AdminReminder) Complete() error {
	if r.IsCompleted {
		return shared.NewBusinessRuleError("Reminder is already completed")
	}
	r.IsCompleted = true
	r.Touch()
	return nil
}

// Update replaces the editable reminder fields
func (r *AdminReminder) Update(title, message string, priority ReminderPriority, dueDate *time.Time) error {
	if title == "" {
		return shared.NewValidationError("Reminder title cannot be empty")
	}
	if !priority.IsValid() {
		return shared.NewValidationError("Reminder priority is not valid")
	}

	r.Title = title
	r.Message = message
	r.Priority = priority
	r.DueDate = dueDate
	r.Touch()
	return nil
}

// ClassifyContractUrgency maps a contract's remaining life onto a reminder
// priority and stage. Thresholds are fractions of the full contract length:
// the last quarter is URGENT/FINAL, inside the last half is HIGH/MIDPOINT,
// anything earlier is MEDIUM/INITIAL. Integer division matches how the
// thresholds are quoted to users (a 100-day contract turns URGENT at 25
// days remaining).
func ClassifyContractUrgency(totalDays, daysRemaining int) (ReminderPriority, ReminderStage) {
	quarter := totalDays / 4
	halfway := totalDays / 2
	switch {
	case daysRemaining <= quarter:
		return ReminderPriorityUrgent, ReminderStageFinal
	case daysRemaining <= halfway:
		return ReminderPriorityHigh, ReminderStageMidpoint
	default:
		return ReminderPriorityMedium, ReminderStageInitial
	}
}
