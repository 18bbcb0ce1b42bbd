package models

import (
	"time"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
)

// ClientModel is the GORM model for clients
type ClientModel struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement"`
	Name                 string `gorm:"not null;index"`
	Email                string
	Phone                string
	Address              string
	Type                 string `gorm:"not null;index"`
	ContractStartDate    time.Time
	ContractDurationDays int
	ContractEndDate      time.Time `gorm:"index"`
	LockedAmountNrs      int64     `gorm:"not null;default:0"`
	AdvanceAmountNrs     int64     `gorm:"not null;default:0"`
	DueAmountNrs         int64     `gorm:"not null;default:0"`
	LastReminderStage    *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName returns the table name for ClientModel
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the model to a domain entity
func (m *ClientModel) ToDomain() *ledger.Client {
	client := &ledger.Client{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:                 m.Name,
		Email:                m.Email,
		Phone:                m.Phone,
		Address:              m.Address,
		Type:                 ledger.ClientType(m.Type),
		ContractStartDate:    m.ContractStartDate,
		ContractDurationDays: m.ContractDurationDays,
		LockedAmountNrs:      m.LockedAmountNrs,
		AdvanceAmountNrs:     m.AdvanceAmountNrs,
		DueAmountNrs:         m.DueAmountNrs,
	}
	if m.LastReminderStage != nil {
		stage := ledger.ReminderStage(*m.LastReminderStage)
		client.LastReminderStage = &stage
	}
	return client
}

// FromDomain populates the model from a domain entity. The contract end date
// column is denormalized so expiry queries stay indexable.
func (m *ClientModel) FromDomain(client *ledger.Client) {
	m.ID = client.ID
	m.Name = client.Name
	m.Email = client.Email
	m.Phone = client.Phone
	m.Address = client.Address
	m.Type = client.Type.String()
	m.ContractStartDate = client.ContractStartDate
	m.ContractDurationDays = client.ContractDurationDays
	m.ContractEndDate = client.ContractEndDate()
	m.LockedAmountNrs = client.LockedAmountNrs
	m.AdvanceAmountNrs = client.AdvanceAmountNrs
	m.DueAmountNrs = client.DueAmountNrs
	if client.LastReminderStage != nil {
		stage := client.LastReminderStage.String()
		m.LastReminderStage = &stage
	} else {
		m.LastReminderStage = nil
	}
	m.CreatedAt = client.CreatedAt
	m.UpdatedAt = client.UpdatedAt
}

// StaffModel is the GORM model for staff
type StaffModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"not null"`
	Email            string
	Phone            string
	Type             string `gorm:"not null;index"`
	MonthlySalaryNrs int64  `gorm:"not null;default:0"`
	IsActive         bool   `gorm:"not null;default:true;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for StaffModel
func (StaffModel) TableName() string {
	return "staff"
}

// ToDomain converts the model to a domain entity
func (m *StaffModel) ToDomain() *ledger.Staff {
	return &ledger.Staff{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:             m.Name,
		Email:            m.Email,
		Phone:            m.Phone,
		Type:             ledger.StaffType(m.Type),
		MonthlySalaryNrs: m.MonthlySalaryNrs,
		IsActive:         m.IsActive,
	}
}

// FromDomain populates the model from a domain entity
func (m *StaffModel) FromDomain(staff *ledger.Staff) {
	m.ID = staff.ID
	m.Name = staff.Name
	m.Email = staff.Email
	m.Phone = staff.Phone
	m.Type = staff.Type.String()
	m.MonthlySalaryNrs = staff.MonthlySalaryNrs
	m.IsActive = staff.IsActive
	m.CreatedAt = staff.CreatedAt
	m.UpdatedAt = staff.UpdatedAt
}

// WorkItemModel is the GORM model for work items
type WorkItemModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"not null"`
	RateNrs   int64  `gorm:"not null;default:0"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for WorkItemModel
func (WorkItemModel) TableName() string {
	return "work_items"
}

// ToDomain converts the model to a domain entity
func (m *WorkItemModel) ToDomain() *ledger.WorkItem {
	return &ledger.WorkItem{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Title:    m.Title,
		RateNrs:  m.RateNrs,
		IsActive: m.IsActive,
	}
}

// FromDomain populates the model from a domain entity
func (m *WorkItemModel) FromDomain(item *ledger.WorkItem) {
	m.ID = item.ID
	m.Title = item.Title
	m.RateNrs = item.RateNrs
	m.IsActive = item.IsActive
	m.CreatedAt = item.CreatedAt
	m.UpdatedAt = item.UpdatedAt
}

// StaffWorkModel is the GORM model for performed work rows
type StaffWorkModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	StaffID     int64  `gorm:"not null;index"`
	WorkItemID  *int64 `gorm:"index"`
	ClientID    *int64 `gorm:"index"`
	Title       string
	Description string
	Quantity    int64     `gorm:"not null;default:0"`
	UnitRateNrs int64     `gorm:"not null;default:0"`
	PerformedAt time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for StaffWorkModel
func (StaffWorkModel) TableName() string {
	return "staff_works"
}

// ToDomain converts the model to a domain entity. No integrity checks happen
// here; callers decide whether a malformed row fails or becomes a warning.
func (m *StaffWorkModel) ToDomain() *ledger.StaffWork {
	return &ledger.StaffWork{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		StaffID:     m.StaffID,
		WorkItemID:  m.WorkItemID,
		ClientID:    m.ClientID,
		Title:       m.Title,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitRateNrs: m.UnitRateNrs,
		PerformedAt: m.PerformedAt,
	}
}

// FromDomain populates the model from a domain entity
func (m *StaffWorkModel) FromDomain(work *ledger.StaffWork) {
	m.ID = work.ID
	m.StaffID = work.StaffID
	m.WorkItemID = work.WorkItemID
	m.ClientID = work.ClientID
	m.Title = work.Title
	m.Description = work.Description
	m.Quantity = work.Quantity
	m.UnitRateNrs = work.UnitRateNrs
	m.PerformedAt = work.PerformedAt
	m.CreatedAt = work.CreatedAt
	m.UpdatedAt = work.UpdatedAt
}

// IncomeModel is the GORM model for income records
type IncomeModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"not null"`
	AmountNrs   int64     `gorm:"not null"`
	ClientID    int64     `gorm:"not null;index"`
	ReceivedAt  time.Time `gorm:"not null;index"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for IncomeModel
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToDomain converts the model to a domain entity
func (m *IncomeModel) ToDomain() *ledger.Income {
	return &ledger.Income{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Description: m.Description,
		AmountNrs:   m.AmountNrs,
		ClientID:    m.ClientID,
		ReceivedAt:  m.ReceivedAt,
		Notes:       m.Notes,
	}
}

// FromDomain populates the model from a domain entity
func (m *IncomeModel) FromDomain(income *ledger.Income) {
	m.ID = income.ID
	m.Description = income.Description
	m.AmountNrs = income.AmountNrs
	m.ClientID = income.ClientID
	m.ReceivedAt = income.ReceivedAt
	m.Notes = income.Notes
	m.CreatedAt = income.CreatedAt
	m.UpdatedAt = income.UpdatedAt
}

// ExpenseModel is the GORM model for expense records
type ExpenseModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"not null"`
	AmountNrs   int64     `gorm:"not null"`
	Source      string    `gorm:"not null;index"`
	StaffID     *int64    `gorm:"index"`
	PaidAt      time.Time `gorm:"not null;index"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for ExpenseModel
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the model to a domain entity
func (m *ExpenseModel) ToDomain() *ledger.Expense {
	return &ledger.Expense{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Description: m.Description,
		AmountNrs:   m.AmountNrs,
		Source:      ledger.ExpenseSource(m.Source),
		StaffID:     m.StaffID,
		PaidAt:      m.PaidAt,
		Notes:       m.Notes,
	}
}

// FromDomain populates the model from a domain entity
func (m *ExpenseModel) FromDomain(expense *ledger.Expense) {
	m.ID = expense.ID
	m.Description = expense.Description
	m.AmountNrs = expense.AmountNrs
	m.Source = expense.Source.String()
	m.StaffID = expense.StaffID
	m.PaidAt = expense.PaidAt
	m.Notes = expense.Notes
	m.CreatedAt = expense.CreatedAt
	m.UpdatedAt = expense.UpdatedAt
}

// AdminReminderModel is the GORM model for admin reminders
type AdminReminderModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Type        string `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Message     string
	Priority    string `gorm:"not null;index"`
	Stage       *string
	ClientID    *int64 `gorm:"index"`
	StaffID     *int64
	DueDate     *time.Time
	IsCompleted bool `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for AdminReminderModel
func (AdminReminderModel) TableName() string {
	return "admin_reminders"
}

// ToDomain converts the model to a domain entity
func (m *AdminReminderModel) ToDomain() *ledger.AdminReminder {
	reminder := &ledger.AdminReminder{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Type:        ledger.ReminderType(m.Type),
		Title:       m.Title,
		Message:     m.Message,
		Priority:    ledger.ReminderPriority(m.Priority),
		ClientID:    m.ClientID,
		StaffID:     m.StaffID,
		DueDate:     m.DueDate,
		IsCompleted: m.IsCompleted,
	}
	if m.Stage != nil {
		stage := ledger.ReminderStage(*m.Stage)
		reminder.Stage = &stage
	}
	return reminder
}

// FromDomain populates the model from a domain entity
func (m *AdminReminderModel) FromDomain(reminder *ledger.AdminReminder) {
	m.ID = reminder.ID
	m.Type = reminder.Type.String()
	m.Title = reminder.Title
	m.Message = reminder.Message
	m.Priority = reminder.Priority.String()
	if reminder.Stage != nil {
		stage := reminder.Stage.String()
		m.Stage = &stage
	} else {
		m.Stage = nil
	}
	m.ClientID = reminder.ClientID
	m.StaffID = reminder.StaffID
	m.DueDate = reminder.DueDate
	m.IsCompleted = reminder.IsCompleted
	m.CreatedAt = reminder.CreatedAt
	m.UpdatedAt = reminder.UpdatedAt
}
