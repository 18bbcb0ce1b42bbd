package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/domain/shared"
)

// SummaryCache is an optional read-through cache for the account summary.
// Implementations must be safe for concurrent use; a nil cache disables
// caching.
type SummaryCache interface {
	GetSummary(ctx context.Context) (*AccountSummary, bool)
	SetSummary(ctx context.Context, summary *AccountSummary)
	Invalidate(ctx context.Context)
}

// SummaryTotals holds the whole-table income and expense sums
type SummaryTotals struct {
	TotalIncomeNrs  int64 `json:"totalIncomeNrs"`
	TotalExpenseNrs int64 `json:"totalExpenseNrs"`
	NetNrs          int64 `json:"netNrs"`
}

// ClientIncome is one income-by-client breakdown row
type ClientIncome struct {
	ClientID int64  `json:"clientId"`
	Name     string `json:"name"`
	Total    int64  `json:"total"`
}

// SourceExpense is one expense-by-source breakdown row
type SourceExpense struct {
	Source ledger.ExpenseSource `json:"source"`
	Total  int64                `json:"total"`
}

// SummaryCounts holds the entity and contract-expiry counts
type SummaryCounts struct {
	ActiveClients             int64 `json:"activeClients"`
	ActiveStaff               int64 `json:"activeStaff"`
	OpenContracts             int64 `json:"openContracts"`
	ContractsExpiringIn30Days int64 `json:"contractsExpiringIn30Days"`
	ContractsExpiringIn7Days  int64 `json:"contractsExpiringIn7Days"`
	ContractsExpiringIn1Day   int64 `json:"contractsExpiringIn1Day"`
}

// AccountSummary is the full aggregation served by the summary endpoint
type AccountSummary struct {
	Totals          SummaryTotals   `json:"totals"`
	IncomeByClient  []ClientIncome  `json:"incomeByClient"`
	ExpenseBySource []SourceExpense `json:"expenseBySource"`
	Counts          SummaryCounts   `json:"counts"`
}

// PayoutLine is one staff work row inside a payout preview
type PayoutLine struct {
	ID          int64     `json:"id"`
	WorkItem    string    `json:"workItem"`
	Client      string    `json:"client"`
	Quantity    int64     `json:"quantity"`
	UnitRate    int64     `json:"unitRate"`
	Total       int64     `json:"total"`
	PerformedAt time.Time `json:"performedAt"`
}

// StaffPayout accumulates one work-basis staff member's lines for a month
type StaffPayout struct {
	StaffID     int64        `json:"staffId"`
	StaffName   string       `json:"staffName"`
	TotalAmount int64        `json:"totalAmount"`
	Works       []PayoutLine `json:"works"`
}

// PayoutPreview is the full payout computation for a month. Warnings carry
// descriptions of malformed rows that were skipped.
type PayoutPreview struct {
	Staffs   []StaffPayout `json:"staffs"`
	Warnings []string      `json:"warnings,omitempty"`
}

// AccountService computes cross-entity financial aggregations and applies
// client account adjustments.
type AccountService struct {
	clientRepo    ledger.ClientRepository
	staffRepo     ledger.StaffRepository
	workItemRepo  ledger.WorkItemRepository
	staffWorkRepo ledger.StaffWorkRepository
	incomeRepo    ledger.IncomeRepository
	expenseRepo   ledger.ExpenseRepository
	cache         SummaryCache
	logger        *zap.Logger
}

// NewAccountService creates a new account service. cache may be nil.
func NewAccountService(
	clientRepo ledger.ClientRepository,
	staffRepo ledger.StaffRepository,
	workItemRepo ledger.WorkItemRepository,
	staffWorkRepo ledger.StaffWorkRepository,
	incomeRepo ledger.IncomeRepository,
	expenseRepo ledger.ExpenseRepository,
	cache SummaryCache,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		clientRepo:    clientRepo,
		staffRepo:     staffRepo,
		workItemRepo:  workItemRepo,
		staffWorkRepo: staffWorkRepo,
		incomeRepo:    incomeRepo,
		expenseRepo:   expenseRepo,
		cache:         cache,
		logger:        logger,
	}
}

// GetSummary aggregates income, expense, per-client and per-source
// breakdowns, and contract expiry counts. The read is advisory; rows written
// while it runs may or may not be included.
func (s *AccountService) GetSummary(ctx context.Context) (*AccountSummary, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetSummary(ctx); ok {
			return cached, nil
		}
	}

	totalIncome, err := s.incomeRepo.SumAmount(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.expenseRepo.SumAmount(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	incomeByClient, err := s.incomeRepo.SumAmountByClient(ctx)
	if err != nil {
		return nil, err
	}
	expenseBySource, err := s.expenseRepo.SumAmountBySource(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	counts, err := s.collectCounts(ctx)
	if err != nil {
		return nil, err
	}

	summary := &AccountSummary{
		Totals: SummaryTotals{
			TotalIncomeNrs:  totalIncome,
			TotalExpenseNrs: totalExpense,
			NetNrs:          totalIncome - totalExpense,
		},
		IncomeByClient:  make([]ClientIncome, 0, len(incomeByClient)),
		ExpenseBySource: make([]SourceExpense, 0, len(expenseBySource)),
		Counts:          *counts,
	}
	for _, row := range incomeByClient {
		summary.IncomeByClient = append(summary.IncomeByClient, ClientIncome{
			ClientID: row.ClientID,
			Name:     row.ClientName,
			Total:    row.TotalNrs,
		})
	}
	// stable order for the source breakdown
	for _, source := range []ledger.ExpenseSource{
		ledger.ExpenseSourceStaffMonthly,
		ledger.ExpenseSourceStaffWorkBasis,
		ledger.ExpenseSourceGeneral,
	} {
		if total, ok := expenseBySource[source]; ok {
			summary.ExpenseBySource = append(summary.ExpenseBySource, SourceExpense{Source: source, Total: total})
		}
	}

	if s.cache != nil {
		s.cache.SetSummary(ctx, summary)
	}
	return summary, nil
}

func (s *AccountService) collectCounts(ctx context.Context) (*SummaryCounts, error) {
	activeClients, err := s.clientRepo.CountByType(ctx, ledger.ClientTypeActive)
	if err != nil {
		return nil, err
	}
	activeStaff, err := s.staffRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	counts := &SummaryCounts{
		ActiveClients: activeClients,
		ActiveStaff:   activeStaff,
		// an open contract is an ACTIVE client; the two counts share one
		// predicate on purpose
		OpenContracts: activeClients,
	}
	horizons := []struct {
		days int
		dst  *int64
	}{
		{30, &counts.ContractsExpiringIn30Days},
		{7, &counts.ContractsExpiringIn7Days},
		{1, &counts.ContractsExpiringIn1Day},
	}
	for _, h := range horizons {
		n, err := s.clientRepo.CountExpiringWithin(ctx, now, h.days)
		if err != nil {
			return nil, err
		}
		*h.dst = n
	}
	return counts, nil
}

// GetStaffWorkPayoutPreview computes the per-staff work-basis payout for one
// calendar month. The range is [first of month, first of next month) in
// server-local time. Malformed rows are skipped and reported as warnings,
// never coerced to zero.
func (s *AccountService) GetStaffWorkPayoutPreview(ctx context.Context, month, year int, staffID *int64) (*PayoutPreview, error) {
	if month < 1 || month > 12 {
		return nil, shared.NewValidationError("Month must be between 1 and 12")
	}
	if year < 1000 || year > 9999 {
		return nil, shared.NewValidationError("Year must be a four digit year")
	}

	if staffID != nil {
		staff, err := s.staffRepo.FindByID(ctx, *staffID)
		if err != nil {
			return nil, err
		}
		if staff.Type != ledger.StaffTypeWorkBasis {
			return nil, shared.NewBusinessRuleError("Payout preview applies to work-basis staff only")
		}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	rows, err := s.staffWorkRepo.FindForPayout(ctx, from, to, staffID)
	if err != nil {
		return nil, err
	}

	preview := &PayoutPreview{Staffs: []StaffPayout{}}
	staffCache := map[int64]*ledger.Staff{}
	itemCache := map[int64]*ledger.WorkItem{}
	clientCache := map[int64]*ledger.Client{}
	// index into preview.Staffs, keyed by staff ID; staffs appear in
	// first-seen row order
	position := map[int64]int{}

	for _, row := range rows {
		staff, ok := staffCache[row.StaffID]
		if !ok {
			staff, err = s.staffRepo.FindByID(ctx, row.StaffID)
			if err != nil {
				// only dangling references degrade to warnings; a failing
				// store fails the whole preview
				if !isNotFound(err) {
					return nil, err
				}
				preview.Warnings = append(preview.Warnings, fmt.Sprintf("staff work %d references unknown staff %d", row.ID, row.StaffID))
				s.logger.Warn("payout row references unknown staff", zap.Int64("staff_work_id", row.ID), zap.Int64("staff_id", row.StaffID))
				continue
			}
			staffCache[row.StaffID] = staff
		}
		if staff.Type != ledger.StaffTypeWorkBasis {
			continue
		}

		if verr := row.Validate(); verr != nil {
			preview.Warnings = append(preview.Warnings, fmt.Sprintf("staff work %d skipped: %s", row.ID, verr.Error()))
			s.logger.Warn("payout row failed integrity check", zap.Int64("staff_work_id", row.ID), zap.Error(verr))
			continue
		}

		line := PayoutLine{
			ID:          row.ID,
			WorkItem:    row.Title,
			Client:      "No Client",
			Quantity:    row.Quantity,
			UnitRate:    row.UnitRateNrs,
			Total:       row.AmountNrs(),
			PerformedAt: row.PerformedAt,
		}
		if row.WorkItemID != nil {
			item, ok := itemCache[*row.WorkItemID]
			if !ok {
				item, err = s.workItemRepo.FindByID(ctx, *row.WorkItemID)
				if err != nil {
					if !isNotFound(err) {
						return nil, err
					}
					preview.Warnings = append(preview.Warnings, fmt.Sprintf("staff work %d references unknown work item %d", row.ID, *row.WorkItemID))
					continue
				}
				itemCache[*row.WorkItemID] = item
			}
			line.WorkItem = item.Title
		}
		if row.ClientID != nil {
			client, ok := clientCache[*row.ClientID]
			if !ok {
				client, err = s.clientRepo.FindByID(ctx, *row.ClientID)
				if err != nil && !isNotFound(err) {
					return nil, err
				}
				if err == nil {
					clientCache[*row.ClientID] = client
				}
			}
			// a dangling client reference only loses the name label
			if client != nil {
				line.Client = client.Name
			}
		}

		idx, seen := position[row.StaffID]
		if !seen {
			idx = len(preview.Staffs)
			position[row.StaffID] = idx
			preview.Staffs = append(preview.Staffs, StaffPayout{
				StaffID:   staff.ID,
				StaffName: staff.Name,
			})
		}
		preview.Staffs[idx].Works = append(preview.Staffs[idx].Works, line)
		preview.Staffs[idx].TotalAmount += line.Total
	}

	return preview, nil
}

func isNotFound(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND"
}

// AdjustClientAccount applies signed balance deltas to one client atomically.
// The due balance moves by lockedDelta minus advanceDelta in the same
// statement, so a concurrent reader never observes a partial application.
func (s *AccountService) AdjustClientAccount(ctx context.Context, clientID, lockedDelta, advanceDelta int64) (*ledger.Client, error) {
	client, err := s.clientRepo.AdjustBalances(ctx, clientID, lockedDelta, advanceDelta)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info("client account adjusted",
		zap.Int64("client_id", clientID),
		zap.Int64("locked_delta", lockedDelta),
		zap.Int64("advance_delta", advanceDelta),
	)
	return client, nil
}
