package collab

import (
	"context"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/collab"
)

// InfluencerService manages influencer records and their social handles
type InfluencerService struct {
	influencerRepo collab.InfluencerRepository
	logger         *zap.Logger
}

// NewInfluencerService creates a new influencer service
func NewInfluencerService(influencerRepo collab.InfluencerRepository, logger *zap.Logger) *InfluencerService {
	return &InfluencerService{influencerRepo: influencerRepo, logger: logger}
}

// CreateInfluencer creates a new influencer with its social handles
func (s *InfluencerService) CreateInfluencer(ctx context.Context, name, email, phone string, handles []collab.SocialHandle, notes string) (*collab.Influencer, error) {
	influencer, err := collab.NewInfluencer(name, email, phone, handles, notes)
	if err != nil {
		return nil, err
	}
	if err := s.influencerRepo.Save(ctx, influencer); err != nil {
		return nil, err
	}
	s.logger.Info("influencer created", zap.Int64("influencer_id", influencer.ID), zap.String("name", influencer.Name))
	return influencer, nil
}

// GetInfluencer returns one influencer by ID
func (s *InfluencerService) GetInfluencer(ctx context.Context, id int64) (*collab.Influencer, error) {
	return s.influencerRepo.FindByID(ctx, id)
}

// ListInfluencers returns influencers matching the filter plus the total
// count
func (s *InfluencerService) ListInfluencers(ctx context.Context, filter collab.InfluencerFilter) ([]*collab.Influencer, int64, error) {
	return s.influencerRepo.FindAll(ctx, filter)
}

// UpdateInfluencer replaces an influencer's editable fields. The handle list
// is replaced wholesale.
func (s *InfluencerService) UpdateInfluencer(ctx context.Context, id int64, name, email, phone string, handles []collab.SocialHandle, notes string) (*collab.Influencer, error) {
	influencer, err := s.influencerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := influencer.Update(name, email, phone, handles, notes); err != nil {
		return nil, err
	}
	if err := s.influencerRepo.Update(ctx, influencer); err != nil {
		return nil, err
	}
	return influencer, nil
}

// DeleteInfluencer removes an influencer
func (s *InfluencerService) DeleteInfluencer(ctx context.Context, id int64) error {
	if _, err := s.influencerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.influencerRepo.Delete(ctx, id)
}
