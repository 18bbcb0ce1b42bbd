package collab

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/collab"
)

// PaymentService manages influencer payments and the overdue sweep
type PaymentService struct {
	paymentRepo       collab.PaymentRepository
	collaborationRepo collab.CollaborationRepository
	logger            *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo collab.PaymentRepository, collaborationRepo collab.CollaborationRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo:       paymentRepo,
		collaborationRepo: collaborationRepo,
		logger:            logger,
	}
}

// CreatePayment creates a pending payment against an existing collaboration
func (s *PaymentService) CreatePayment(ctx context.Context, collaborationID, amountNrs int64, dueDate time.Time, notes string) (*collab.Payment, error) {
	if _, err := s.collaborationRepo.FindByID(ctx, collaborationID); err != nil {
		return nil, err
	}
	payment, err := collab.NewPayment(collaborationID, amountNrs, dueDate, notes)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	s.logger.Info("payment created",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("collaboration_id", collaborationID),
		zap.Int64("amount_nrs", amountNrs),
	)
	return payment, nil
}

// GetPayment returns one payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*collab.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// ListPayments returns payments matching the filter plus the total count
func (s *PaymentService) ListPayments(ctx context.Context, filter collab.PaymentFilter) ([]*collab.Payment, int64, error) {
	return s.paymentRepo.FindAll(ctx, filter)
}

// PayPayment settles a pending or overdue payment
func (s *PaymentService) PayPayment(ctx context.Context, id int64) (*collab.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := payment.MarkPaid(time.Now()); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	s.logger.Info("payment settled", zap.Int64("payment_id", payment.ID))
	return payment, nil
}

// CancelPayment voids an unsettled payment
func (s *PaymentService) CancelPayment(ctx context.Context, id int64) (*collab.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := payment.Cancel(); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// SweepOverdue flips every pending payment past its due date to OVERDUE and
// returns how many changed. One payment failing never aborts the sweep.
func (s *PaymentService) SweepOverdue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.paymentRepo.FindPendingDueBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, payment := range due {
		if err := payment.MarkOverdue(now); err != nil {
			continue
		}
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			s.logger.Error("overdue sweep failed for payment",
				zap.Int64("payment_id", payment.ID),
				zap.Error(err),
			)
			continue
		}
		swept++
	}

	if swept > 0 {
		s.logger.Info("overdue payment sweep finished", zap.Int("swept", swept))
	}
	return swept, nil
}

// DeletePayment removes a payment
func (s *PaymentService) DeletePayment(ctx context.Context, id int64) error {
	if _, err := s.paymentRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.paymentRepo.Delete(ctx, id)
}
