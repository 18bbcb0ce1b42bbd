package collab

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/domain/collab"
	"github.com/karobar/backoffice/internal/domain/shared"
)

// CollaborationService manages influencer collaborations
type CollaborationService struct {
	collaborationRepo collab.CollaborationRepository
	influencerRepo    collab.InfluencerRepository
	logger            *zap.Logger
}

// NewCollaborationService creates a new collaboration service
func NewCollaborationService(collaborationRepo collab.CollaborationRepository, influencerRepo collab.InfluencerRepository, logger *zap.Logger) *CollaborationService {
	return &CollaborationService{
		collaborationRepo: collaborationRepo,
		influencerRepo:    influencerRepo,
		logger:            logger,
	}
}

// CreateCollaboration creates a draft collaboration for an existing
// influencer
func (s *CollaborationService) CreateCollaboration(ctx context.Context, influencerID int64, title, description string, agreedAmountNrs int64, startDate, endDate *time.Time, deliverables string) (*collab.Collaboration, error) {
	if _, err := s.influencerRepo.FindByID(ctx, influencerID); err != nil {
		return nil, err
	}
	collaboration, err := collab.NewCollaboration(influencerID, title, description, agreedAmountNrs, startDate, endDate, deliverables)
	if err != nil {
		return nil, err
	}
	if err := s.collaborationRepo.Save(ctx, collaboration); err != nil {
		return nil, err
	}
	s.logger.Info("collaboration created",
		zap.Int64("collaboration_id", collaboration.ID),
		zap.Int64("influencer_id", influencerID),
	)
	return collaboration, nil
}

// GetCollaboration returns one collaboration by ID
func (s *CollaborationService) GetCollaboration(ctx context.Context, id int64) (*collab.Collaboration, error) {
	return s.collaborationRepo.FindByID(ctx, id)
}

// ListCollaborations returns collaborations matching the filter plus the
// total count
func (s *CollaborationService) ListCollaborations(ctx context.Context, filter collab.CollaborationFilter) ([]*collab.Collaboration, int64, error) {
	return s.collaborationRepo.FindAll(ctx, filter)
}

// UpdateCollaboration replaces a collaboration's editable fields
func (s *CollaborationService) UpdateCollaboration(ctx context.Context, id int64, title, description string, agreedAmountNrs int64, startDate, endDate *time.Time, deliverables string) (*collab.Collaboration, error) {
	collaboration, err := s.collaborationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := collaboration.Update(title, description, agreedAmountNrs, startDate, endDate, deliverables); err != nil {
		return nil, err
	}
	if err := s.collaborationRepo.Update(ctx, collaboration); err != nil {
		return nil, err
	}
	return collaboration, nil
}

// TransitionCollaboration moves a collaboration into the given status
func (s *CollaborationService) TransitionCollaboration(ctx context.Context, id int64, status collab.CollaborationStatus) (*collab.Collaboration, error) {
	collaboration, err := s.collaborationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch status {
	case collab.CollaborationStatusActive:
		err = collaboration.Activate()
	case collab.CollaborationStatusCompleted:
		err = collaboration.Complete()
	case collab.CollaborationStatusCancelled:
		err = collaboration.Cancel()
	default:
		return nil, shared.NewValidationError("Unsupported collaboration status transition")
	}
	if err != nil {
		return nil, err
	}

	if err := s.collaborationRepo.Update(ctx, collaboration); err != nil {
		return nil, err
	}
	return collaboration, nil
}

// DeleteCollaboration removes a collaboration
func (s *CollaborationService) DeleteCollaboration(ctx context.Context, id int64) error {
	if _, err := s.collaborationRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.collaborationRepo.Delete(ctx, id)
}
