package collab

import (
	"context"
	"time"
)

// InfluencerFilter carries optional filters for influencer listings
type InfluencerFilter struct {
	Platform *Platform
	Search   string
	Offset   int
	Limit    int
}

// InfluencerRepository defines the influencer persistence port
type InfluencerRepository interface {
	Save(ctx context.Context, influencer *Influencer) error
	FindByID(ctx context.Context, id int64) (*Influencer, error)
	FindAll(ctx context.Context, filter InfluencerFilter) ([]*Influencer, int64, error)
	Update(ctx context.Context, influencer *Influencer) error
	Delete(ctx context.Context, id int64) error
}

// CollaborationFilter carries optional filters for collaboration listings
type CollaborationFilter struct {
	InfluencerID *int64
	Status       *CollaborationStatus
	Offset       int
	Limit        int
}

// CollaborationRepository defines the collaboration persistence port
type CollaborationRepository interface {
	Save(ctx context.Context, collaboration *Collaboration) error
	FindByID(ctx context.Context, id int64) (*Collaboration, error)
	FindAll(ctx context.Context, filter CollaborationFilter) ([]*Collaboration, int64, error)
	Update(ctx context.Context, collaboration *Collaboration) error
	Delete(ctx context.Context, id int64) error
}

// PaymentFilter carries optional filters for payment listings
type PaymentFilter struct {
	CollaborationID *int64
	Status          *PaymentStatus
	Offset          int
	Limit           int
}

// PaymentRepository defines the payment persistence port
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id int64) (*Payment, error)
	FindAll(ctx context.Context, filter PaymentFilter) ([]*Payment, int64, error)
	FindPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*Payment, error)
	Update(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id int64) error
	SumOutstanding(ctx context.Context) (int64, error)
}
