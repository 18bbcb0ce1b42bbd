package collab

import (
	"github.com/karobar/backoffice/internal/domain/shared"
)

// Platform identifies the social network behind a handle
type Platform string

const (
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformTikTok    Platform = "TIKTOK"
	PlatformYouTube   Platform = "YOUTUBE"
	PlatformFacebook  Platform = "FACEBOOK"
	PlatformOther     Platform = "OTHER"
)

// IsValid checks if the platform is a valid Platform
func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformFacebook, PlatformOther:
		return true
	}
	return false
}

// String returns the string representation of Platform
func (p Platform) String() string {
	return string(p)
}

// SocialHandle is one platform account belonging to an influencer
type SocialHandle struct {
	Platform      Platform `json:"platform"`
	Handle        string   `json:"handle"`
	FollowerCount int64    `json:"follower_count"`
}

// NewSocialHandle creates a validated social handle
func NewSocialHandle(platform Platform, handle string, followerCount int64) (*SocialHandle, error) {
	if !platform.IsValid() {
		return nil, shared.NewValidationError("Social platform is not valid")
	}
	if handle == "" {
		return nil, shared.NewValidationError("Social handle cannot be empty")
	}
	if followerCount < 0 {
		return nil, shared.NewValidationError("Follower count cannot be negative")
	}

	return &SocialHandle{
		Platform:      platform,
		Handle:        handle,
		FollowerCount: followerCount,
	}, nil
}

// Influencer represents an external creator the business collaborates with
type Influencer struct {
	shared.BaseEntity
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Handles []SocialHandle `json:"handles"`
	Notes   string         `json:"notes"`
}

// NewInfluencer creates a new influencer
func NewInfluencer(name, email, phone string, handles []SocialHandle, notes string) (*Influencer, error) {
	if name == "" {
		return nil, shared.NewValidationError("Influencer name cannot be empty")
	}
	for _, h := range handles {
		if !h.Platform.IsValid() {
			return nil, shared.NewValidationError("Social platform is not valid")
		}
		if h.Handle == "" {
			return nil, shared.NewValidationError("Social handle cannot be empty")
		}
	}

	return &Influencer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Handles:    handles,
		Notes:      notes,
	}, nil
}

// Update replaces the editable influencer fields
func (i *Influencer) Update(name, email, phone string, handles []SocialHandle, notes string) error {
	if name == "" {
		return shared.NewValidationError("Influencer name cannot be empty")
	}
	for _, h := range handles {
		if !h.Platform.IsValid() {
			return shared.NewValidationError("Social platform is not valid")
		}
		if h.Handle == "" {
			return shared.NewValidationError("Social handle cannot be empty")
		}
	}

	i.Name = name
	i.Email = email
	i.Phone = phone
	i.Handles = handles
	i.Notes = notes
	i.Touch()
	return nil
}
