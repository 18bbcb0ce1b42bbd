package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karobar/backoffice/internal/domain/collab"
	"github.com/karobar/backoffice/internal/domain/shared"
	"github.com/karobar/backoffice/internal/infrastructure/persistence/models"
)

// GormInfluencerRepository implements InfluencerRepository using GORM
type GormInfluencerRepository struct {
	db *gorm.DB
}

// NewGormInfluencerRepository creates a new GormInfluencerRepository
func NewGormInfluencerRepository(db *gorm.DB) *GormInfluencerRepository {
	return &GormInfluencerRepository{db: db}
}

// Save persists a new influencer with its handles and assigns IDs
func (r *GormInfluencerRepository) Save(ctx context.Context, influencer *collab.Influencer) error {
	var model models.InfluencerModel
	model.FromDomain(influencer)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	influencer.ID = model.ID
	return nil
}

// FindByID finds an influencer by its ID, handles included
func (r *GormInfluencerRepository) FindByID(ctx context.Context, id int64) (*collab.Influencer, error) {
	var model models.InfluencerModel
	if err := r.db.WithContext(ctx).Preload("Handles").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Influencer", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds influencers matching the filter
func (r *GormInfluencerRepository) FindAll(ctx context.Context, filter collab.InfluencerFilter) ([]*collab.Influencer, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.InfluencerModel{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Platform != nil {
		query = query.Where("id IN (?)", r.db.Model(&models.SocialHandleModel{}).
			Select("influencer_id").Where("platform = ?", filter.Platform.String()))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var influencerModels []models.InfluencerModel
	query = query.Preload("Handles").Order("id")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Find(&influencerModels).Error; err != nil {
		return nil, 0, err
	}

	influencers := make([]*collab.Influencer, len(influencerModels))
	for i := range influencerModels {
		influencers[i] = influencerModels[i].ToDomain()
	}
	return influencers, total, nil
}

// Update persists changes to an influencer. Handles are replaced wholesale
// since they carry no identity of their own.
func (r *GormInfluencerRepository) Update(ctx context.Context, influencer *collab.Influencer) error {
	var model models.InfluencerModel
	model.FromDomain(influencer)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.InfluencerModel{}).Where("id = ?", influencer.ID).
			Select("name", "email", "phone", "notes", "updated_at").Updates(&model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError("Influencer", influencer.ID)
		}
		if err := tx.Where("influencer_id = ?", influencer.ID).
			Delete(&models.SocialHandleModel{}).Error; err != nil {
			return err
		}
		if len(model.Handles) == 0 {
			return nil
		}
		return tx.Create(&model.Handles).Error
	})
}

// Delete removes an influencer; its handles cascade
func (r *GormInfluencerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Select("Handles").Delete(&models.InfluencerModel{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Influencer", id)
	}
	return nil
}
