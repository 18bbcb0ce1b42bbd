package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karobar/backoffice/internal/domain/collab"
	"github.com/karobar/backoffice/internal/domain/shared"
	"github.com/karobar/backoffice/internal/infrastructure/persistence/models"
)

// GormCollaborationRepository implements CollaborationRepository using GORM
type GormCollaborationRepository struct {
	db *gorm.DB
}

// NewGormCollaborationRepository creates a new GormCollaborationRepository
func NewGormCollaborationRepository(db *gorm.DB) *GormCollaborationRepository {
	return &GormCollaborationRepository{db: db}
}

// Save persists a new collaboration and assigns its ID
func (r *GormCollaborationRepository) Save(ctx context.Context, collaboration *collab.Collaboration) error {
	var model models.CollaborationModel
	model.FromDomain(collaboration)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	collaboration.ID = model.ID
	return nil
}

// FindByID finds a collaboration by its ID
func (r *GormCollaborationRepository) FindByID(ctx context.Context, id int64) (*collab.Collaboration, error) {
	var model models.CollaborationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Collaboration", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds collaborations matching the filter
func (r *GormCollaborationRepository) FindAll(ctx context.Context, filter collab.CollaborationFilter) ([]*collab.Collaboration, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CollaborationModel{})
	if filter.InfluencerID != nil {
		query = query.Where("influencer_id = ?", *filter.InfluencerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var collaborationModels []models.CollaborationModel
	query = query.Order("id DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Find(&collaborationModels).Error; err != nil {
		return nil, 0, err
	}

	collaborations := make([]*collab.Collaboration, len(collaborationModels))
	for i := range collaborationModels {
		collaborations[i] = collaborationModels[i].ToDomain()
	}
	return collaborations, total, nil
}

// Update persists changes to an existing collaboration
func (r *GormCollaborationRepository) Update(ctx context.Context, collaboration *collab.Collaboration) error {
	var model models.CollaborationModel
	model.FromDomain(collaboration)
	result := r.db.WithContext(ctx).Model(&models.CollaborationModel{}).Where("id = ?", collaboration.ID).
		Select("*").Omit("id", "created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Collaboration", collaboration.ID)
	}
	return nil
}

// Delete removes a collaboration
func (r *GormCollaborationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.CollaborationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Collaboration", id)
	}
	return nil
}
