package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/ledger"
)

// CacheInvalidator drops cached aggregations after a write. A nil invalidator
// is a no-op.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// ClientService manages client records
type ClientService struct {
	clientRepo ledger.ClientRepository
	cache      CacheInvalidator
	logger     *zap.Logger
}

// NewClientService creates a new client service
func NewClientService(clientRepo ledger.ClientRepository, cache CacheInvalidator, logger *zap.Logger) *ClientService {
	return &ClientService{clientRepo: clientRepo, cache: cache, logger: logger}
}

func (s *ClientService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, name, email, phone, address string, clientType ledger.ClientType, contractStart time.Time, durationDays int) (*ledger.Client, error) {
	client, err := ledger.NewClient(name, email, phone, address, clientType, contractStart, durationDays)
	if err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("client created", zap.Int64("client_id", client.ID), zap.String("name", client.Name))
	return client, nil
}

// GetClient returns one client by ID
func (s *ClientService) GetClient(ctx context.Context, id int64) (*ledger.Client, error) {
	return s.clientRepo.FindByID(ctx, id)
}

// ListClients returns clients matching the filter plus the total count
func (s *ClientService) ListClients(ctx context.Context, filter ledger.ClientFilter) ([]*ledger.Client, int64, error) {
	return s.clientRepo.FindAll(ctx, filter)
}

// UpdateClient replaces a client's editable fields
func (s *ClientService) UpdateClient(ctx context.Context, id int64, name, email, phone, address string, clientType ledger.ClientType, contractStart time.Time, durationDays int) (*ledger.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := client.Update(name, email, phone, address, clientType, contractStart, durationDays); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return client, nil
}

// DeleteClient removes a client
func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	if _, err := s.clientRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
