package reminder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
)

// Notifier delivers reminder notifications to the administrator. Delivery is
// best-effort; scan results commit whether or not delivery succeeds.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// expiryScanHorizonDays bounds how far ahead of the contract end date the
// daily scan looks for candidates.
const expiryScanHorizonDays = 30

// ScanResult reports what one contract expiry scan did
type ScanResult struct {
	Scanned   int     `json:"scanned"`
	Created   int     `json:"created"`
	Skipped   int     `json:"skipped"`
	ClientIDs []int64 `json:"clientIds,omitempty"`
}

// Candidate is one would-be reminder from a dry run
type Candidate struct {
	ClientID      int64                   `json:"clientId"`
	ClientName    string                  `json:"clientName"`
	DaysRemaining int                     `json:"daysRemaining"`
	Priority      ledger.ReminderPriority `json:"priority"`
	Stage         ledger.ReminderStage    `json:"stage"`
	WouldCreate   bool                    `json:"wouldCreate"`
}

// DryRunResult pairs scan candidates with the currently active reminders
type DryRunResult struct {
	Candidates      []Candidate             `json:"candidates"`
	ActiveReminders []*ledger.AdminReminder `json:"activeReminders"`
}

// ReminderService manages admin reminders and runs the contract expiry scan
type ReminderService struct {
	reminderRepo ledger.ReminderRepository
	clientRepo   ledger.ClientRepository
	notifier     Notifier
	logger       *zap.Logger
}

// NewReminderService creates a new reminder service. notifier may be nil.
func NewReminderService(reminderRepo ledger.ReminderRepository, clientRepo ledger.ClientRepository, notifier Notifier, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		clientRepo:   clientRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateReminder creates a manual reminder
func (s *ReminderService) CreateReminder(ctx context.Context, title, message string, priority ledger.ReminderPriority, dueDate *time.Time, clientID, staffID *int64) (*ledger.AdminReminder, error) {
	if clientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *clientID); err != nil {
			return nil, err
		}
	}
	reminder, err := ledger.NewAdminReminder(title, message, priority, dueDate, clientID, staffID)
	if err != nil {
		return nil, err
	}
	if err := s.reminderRepo.Save(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// GetReminder returns one reminder by ID
func (s *ReminderService) GetReminder(ctx context.Context, id int64) (*ledger.AdminReminder, error) {
	return s.reminderRepo.FindByID(ctx, id)
}

// ListReminders returns reminders matching the filter plus the total count
func (s *ReminderService) ListReminders(ctx context.Context, filter ledger.ReminderFilter) ([]*ledger.AdminReminder, int64, error) {
	return s.reminderRepo.FindAll(ctx, filter)
}

// ListActiveReminders returns all uncompleted reminders
func (s *ReminderService) ListActiveReminders(ctx context.Context) ([]*ledger.AdminReminder, error) {
	reminders, _, err := s.reminderRepo.FindAll(ctx, ledger.ReminderFilter{PendingOnly: true})
	return reminders, err
}

// UpdateReminder replaces a reminder's editable fields
func (s *ReminderService) UpdateReminder(ctx context.Context, id int64, title, message string, priority ledger.ReminderPriority, dueDate *time.Time) (*ledger.AdminReminder, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := reminder.Update(title, message, priority, dueDate); err != nil {
		return nil, err
	}
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// CompleteReminder marks a reminder completed
func (s *ReminderService) CompleteReminder(ctx context.Context, id int64) (*ledger.AdminReminder, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := reminder.Complete(); err != nil {
		return nil, err
	}
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// DeleteReminder removes a reminder
func (s *ReminderService) DeleteReminder(ctx context.Context, id int64) error {
	return s.reminderRepo.Delete(ctx, id)
}

// RunContractExpiryScan walks ACTIVE clients whose contract ends within the
// scan horizon and stages a reminder for each one whose urgency stage has
// advanced past the last stage recorded on the client. One client failing
// never aborts the scan; its error is logged and the scan moves on.
func (s *ReminderService) RunContractExpiryScan(ctx context.Context, now time.Time) (*ScanResult, error) {
	clients, err := s.clientRepo.FindExpiringWithinDays(ctx, now, expiryScanHorizonDays)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{Scanned: len(clients)}
	for _, client := range clients {
		created, err := s.scanClient(ctx, client, now)
		if err != nil {
			s.logger.Error("expiry scan failed for client",
				zap.Int64("client_id", client.ID),
				zap.Error(err),
			)
			result.Skipped++
			continue
		}
		if created {
			result.Created++
			result.ClientIDs = append(result.ClientIDs, client.ID)
		} else {
			result.Skipped++
		}
	}

	s.logger.Info("contract expiry scan finished",
		zap.Int("scanned", result.Scanned),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *ReminderService) scanClient(ctx context.Context, client *ledger.Client, now time.Time) (bool, error) {
	if client.Type != ledger.ClientTypeActive {
		return false, nil
	}

	daysRemaining := client.DaysRemaining(now)
	priority, stage := ledger.ClassifyContractUrgency(client.ContractDurationDays, daysRemaining)
	if client.LastReminderStage != nil && stage.Rank() <= client.LastReminderStage.Rank() {
		return false, nil
	}

	title := fmt.Sprintf("Contract expiring: %s", client.Name)
	message := fmt.Sprintf("Contract for %s ends on %s (%d days remaining)",
		client.Name, client.ContractEndDate().Format("2006-01-02"), daysRemaining)
	reminder, err := ledger.NewContractReminder(title, message, priority, stage, client.ID, client.ContractEndDate())
	if err != nil {
		return false, err
	}
	if err := s.reminderRepo.Save(ctx, reminder); err != nil {
		return false, err
	}

	client.RecordReminderStage(stage)
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return false, err
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, title, message); err != nil {
			// delivery is best-effort; the reminder and stage stand
			s.logger.Warn("reminder notification failed",
				zap.Int64("client_id", client.ID),
				zap.Error(err),
			)
		}
	}
	return true, nil
}

// DryRunExpiryScan reports what the scan would do right now without writing
// anything.
func (s *ReminderService) DryRunExpiryScan(ctx context.Context, now time.Time) (*DryRunResult, error) {
	clients, err := s.clientRepo.FindExpiringWithinDays(ctx, now, expiryScanHorizonDays)
	if err != nil {
		return nil, err
	}
	active, err := s.ListActiveReminders(ctx)
	if err != nil {
		return nil, err
	}

	result := &DryRunResult{Candidates: []Candidate{}, ActiveReminders: active}
	for _, client := range clients {
		if client.Type != ledger.ClientTypeActive {
			continue
		}
		daysRemaining := client.DaysRemaining(now)
		priority, stage := ledger.ClassifyContractUrgency(client.ContractDurationDays, daysRemaining)
		wouldCreate := client.LastReminderStage == nil || stage.Rank() > client.LastReminderStage.Rank()
		result.Candidates = append(result.Candidates, Candidate{
			ClientID:      client.ID,
			ClientName:    client.Name,
			DaysRemaining: daysRemaining,
			Priority:      priority,
			Stage:         stage,
			WouldCreate:   wouldCreate,
		})
	}
	return result, nil
}
