package ledger

import (
	"context"
	"time"
)

// ClientFilter carries optional filters for client listings
type ClientFilter struct {
	Type   *ClientType
	Search string
	Offset int
	Limit  int
}

// ClientRepository defines the client persistence port
type ClientRepository interface {
	Save(ctx context.Context, client *Client) error
	FindByID(ctx context.Context, id int64) (*Client, error)
	FindAll(ctx context.Context, filter ClientFilter) ([]*Client, int64, error)
	FindExpiringWithinDays(ctx context.Context, now time.Time, days int) ([]*Client, error)
	Update(ctx context.Context, client *Client) error
	// AdjustBalances applies both deltas and the derived due delta in a
	// single statement so concurrent adjustments cannot interleave.
	AdjustBalances(ctx context.Context, id int64, lockedDelta, advanceDelta int64) (*Client, error)
	Delete(ctx context.Context, id int64) error
	SumBalances(ctx context.Context) (*ClientBalanceTotals, error)
	CountByType(ctx context.Context, clientType ClientType) (int64, error)
	// CountExpiringWithin counts ACTIVE clients whose contract end date lies
	// in (now, now+days].
	CountExpiringWithin(ctx context.Context, now time.Time, days int) (int64, error)
}

// ClientBalanceTotals aggregates balances across all clients
type ClientBalanceTotals struct {
	TotalLockedNrs  int64
	TotalAdvanceNrs int64
	TotalDueNrs     int64
}

// StaffFilter carries optional filters for staff listings
type StaffFilter struct {
	Type       *StaffType
	ActiveOnly bool
	Offset     int
	Limit      int
}

// StaffRepository defines the staff persistence port
type StaffRepository interface {
	Save(ctx context.Context, staff *Staff) error
	FindByID(ctx context.Context, id int64) (*Staff, error)
	FindAll(ctx context.Context, filter StaffFilter) ([]*Staff, int64, error)
	Update(ctx context.Context, staff *Staff) error
	Delete(ctx context.Context, id int64) error
	SumMonthlySalaries(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

// WorkItemRepository defines the work item persistence port
type WorkItemRepository interface {
	Save(ctx context.Context, item *WorkItem) error
	FindByID(ctx context.Context, id int64) (*WorkItem, error)
	FindAll(ctx context.Context, activeOnly bool, offset, limit int) ([]*WorkItem, int64, error)
	Update(ctx context.Context, item *WorkItem) error
	Delete(ctx context.Context, id int64) error
}

// StaffWorkFilter carries optional filters for staff work listings.
// From/To bound the performed-at date as a half-open interval [From, To).
type StaffWorkFilter struct {
	StaffID  *int64
	ClientID *int64
	From     *time.Time
	To       *time.Time
	Offset   int
	Limit    int
}

// StaffWorkRepository defines the staff work persistence port
type StaffWorkRepository interface {
	Save(ctx context.Context, work *StaffWork) error
	FindByID(ctx context.Context, id int64) (*StaffWork, error)
	FindAll(ctx context.Context, filter StaffWorkFilter) ([]*StaffWork, int64, error)
	// FindForPayout returns every row in [from, to), optionally limited to
	// one staff member, without pagination. Integrity checks happen in the
	// application layer so bad rows can be reported instead of dropped
	// silently.
	FindForPayout(ctx context.Context, from, to time.Time, staffID *int64) ([]*StaffWork, error)
	Delete(ctx context.Context, id int64) error
}

// IncomeFilter carries optional filters for income listings
type IncomeFilter struct {
	ClientID *int64
	From     *time.Time
	To       *time.Time
	Offset   int
	Limit    int
}

// IncomeRepository defines the income persistence port
type IncomeRepository interface {
	Save(ctx context.Context, income *Income) error
	FindByID(ctx context.Context, id int64) (*Income, error)
	FindAll(ctx context.Context, filter IncomeFilter) ([]*Income, int64, error)
	Update(ctx context.Context, income *Income) error
	Delete(ctx context.Context, id int64) error
	SumAmount(ctx context.Context, from, to *time.Time) (int64, error)
	SumAmountByClient(ctx context.Context) ([]ClientIncomeTotal, error)
}

// ClientIncomeTotal is one row of the income-by-client breakdown. Incomes
// without a client attribution are not represented.
type ClientIncomeTotal struct {
	ClientID   int64
	ClientName string
	TotalNrs   int64
}

// ExpenseFilter carries optional filters for expense listings
type ExpenseFilter struct {
	Source  *ExpenseSource
	StaffID *int64
	From    *time.Time
	To      *time.Time
	Offset  int
	Limit   int
}

// ExpenseRepository defines the expense persistence port
type ExpenseRepository interface {
	Save(ctx context.Context, expense *Expense) error
	FindByID(ctx context.Context, id int64) (*Expense, error)
	FindAll(ctx context.Context, filter ExpenseFilter) ([]*Expense, int64, error)
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id int64) error
	SumAmount(ctx context.Context, from, to *time.Time) (int64, error)
	SumAmountBySource(ctx context.Context, from, to *time.Time) (map[ExpenseSource]int64, error)
}

// ReminderFilter carries optional filters for reminder listings
type ReminderFilter struct {
	Type          *ReminderType
	Priority      *ReminderPriority
	ClientID      *int64
	PendingOnly   bool
	CompletedOnly bool
	Offset        int
	Limit         int
}

// ReminderRepository defines the admin reminder persistence port
type ReminderRepository interface {
	Save(ctx context.Context, reminder *AdminReminder) error
	FindByID(ctx context.Context, id int64) (*AdminReminder, error)
	FindAll(ctx context.Context, filter ReminderFilter) ([]*AdminReminder, int64, error)
	Update(ctx context.Context, reminder *AdminReminder) error
	Delete(ctx context.Context, id int64) error
	CountPending(ctx context.Context) (int64, error)
}
