package models

import (
	"time"

	"github.com/karobar/backoffice/internal/domain/collab"
	"github.com/karobar/backoffice/internal/domain/shared"
)

// InfluencerModel is the GORM model for influencers
type InfluencerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null;index"`
	Email     string
	Phone     string
	Notes     string
	Handles   []SocialHandleModel `gorm:"foreignKey:InfluencerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for InfluencerModel
func (InfluencerModel) TableName() string {
	return "influencers"
}

// SocialHandleModel is the GORM model for influencer social handles
type SocialHandleModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	InfluencerID  int64  `gorm:"not null;index"`
	Platform      string `gorm:"not null"`
	Handle        string `gorm:"not null"`
	FollowerCount int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for SocialHandleModel
func (SocialHandleModel) TableName() string {
	return "social_handles"
}

// ToDomain converts the model to a domain entity
func (m *InfluencerModel) ToDomain() *collab.Influencer {
	handles := make([]collab.SocialHandle, len(m.Handles))
	for i, h := range m.Handles {
		handles[i] = collab.SocialHandle{
			Platform:      collab.Platform(h.Platform),
			Handle:        h.Handle,
			FollowerCount: h.FollowerCount,
		}
	}
	return &collab.Influencer{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Handles: handles,
		Notes:   m.Notes,
	}
}

// FromDomain populates the model from a domain entity
func (m *InfluencerModel) FromDomain(influencer *collab.Influencer) {
	m.ID = influencer.ID
	m.Name = influencer.Name
	m.Email = influencer.Email
	m.Phone = influencer.Phone
	m.Notes = influencer.Notes
	m.Handles = make([]SocialHandleModel, len(influencer.Handles))
	for i, h := range influencer.Handles {
		m.Handles[i] = SocialHandleModel{
			InfluencerID:  influencer.ID,
			Platform:      h.Platform.String(),
			Handle:        h.Handle,
			FollowerCount: h.FollowerCount,
		}
	}
	m.CreatedAt = influencer.CreatedAt
	m.UpdatedAt = influencer.UpdatedAt
}

// CollaborationModel is the GORM model for collaborations
type CollaborationModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	InfluencerID    int64  `gorm:"not null;index"`
	Title           string `gorm:"not null"`
	Description     string
	AgreedAmountNrs int64  `gorm:"not null;default:0"`
	Status          string `gorm:"not null;index"`
	StartDate       *time.Time
	EndDate         *time.Time
	Deliverables    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for CollaborationModel
func (CollaborationModel) TableName() string {
	return "collaborations"
}

// ToDomain converts the model to a domain entity
func (m *CollaborationModel) ToDomain() *collab.Collaboration {
	return &collab.Collaboration{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		InfluencerID:    m.InfluencerID,
		Title:           m.Title,
		Description:     m.Description,
		AgreedAmountNrs: m.AgreedAmountNrs,
		Status:          collab.CollaborationStatus(m.Status),
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		Deliverables:    m.Deliverables,
	}
}

// FromDomain populates the model from a domain entity
func (m *CollaborationModel) FromDomain(collaboration *collab.Collaboration) {
	m.ID = collaboration.ID
	m.InfluencerID = collaboration.InfluencerID
	m.Title = collaboration.Title
	m.Description = collaboration.Description
	m.AgreedAmountNrs = collaboration.AgreedAmountNrs
	m.Status = collaboration.Status.String()
	m.StartDate = collaboration.StartDate
	m.EndDate = collaboration.EndDate
	m.Deliverables = collaboration.Deliverables
	m.CreatedAt = collaboration.CreatedAt
	m.UpdatedAt = collaboration.UpdatedAt
}

// PaymentModel is the GORM model for influencer payments
type PaymentModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	CollaborationID int64     `gorm:"not null;index"`
	AmountNrs       int64     `gorm:"not null"`
	Status          string    `gorm:"not null;index"`
	DueDate         time.Time `gorm:"not null;index"`
	PaidAt          *time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for PaymentModel
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the model to a domain entity
func (m *PaymentModel) ToDomain() *collab.Payment {
	return &collab.Payment{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		CollaborationID: m.CollaborationID,
		AmountNrs:       m.AmountNrs,
		Status:          collab.PaymentStatus(m.Status),
		DueDate:         m.DueDate,
		PaidAt:          m.PaidAt,
		Notes:           m.Notes,
	}
}

// FromDomain populates the model from a domain entity
func (m *PaymentModel) FromDomain(payment *collab.Payment) {
	m.ID = payment.ID
	m.CollaborationID = payment.CollaborationID
	m.AmountNrs = payment.AmountNrs
	m.Status = payment.Status.String()
	m.DueDate = payment.DueDate
	m.PaidAt = payment.PaidAt
	m.Notes = payment.Notes
	m.CreatedAt = payment.CreatedAt
	m.UpdatedAt = payment.UpdatedAt
}
