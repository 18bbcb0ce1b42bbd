package handler

import (
	"github.com/gin-gonic/gin"

	collabapp "github.com/karobar/backoffice/internal/application/collab"
	"github.com/karobar/backoffice/internal/domain/collab"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// InfluencerHandler handles influencer CRUD endpoints
type InfluencerHandler struct {
	BaseHandler
	influencerService *collabapp.InfluencerService
}

// NewInfluencerHandler creates a new InfluencerHandler
func NewInfluencerHandler(influencerService *collabapp.InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{influencerService: influencerService}
}

// RegisterRoutes registers influencer routes
func (h *InfluencerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	influencers := rg.Group("/influencers")
	{
		influencers.POST("", h.Create)
		influencers.GET("", h.List)
		influencers.GET("/:id", h.Get)
		influencers.PUT("/:id", h.Update)
		influencers.DELETE("/:id", h.Delete)
	}
}

// SocialHandleRequest is one social media handle in an influencer payload
type SocialHandleRequest struct {
	Platform      string `json:"platform" binding:"required"`
	Handle        string `json:"handle" binding:"required"`
	FollowerCount int64  `json:"follower_count"`
}

// InfluencerRequest is the create/update payload for an influencer
type InfluencerRequest struct {
	Name    string                `json:"name" binding:"required"`
	Email   string                `json:"email"`
	Phone   string                `json:"phone"`
	Handles []SocialHandleRequest `json:"handles"`
	Notes   string                `json:"notes"`
}

func (r *InfluencerRequest) handles() []collab.SocialHandle {
	handles := make([]collab.SocialHandle, len(r.Handles))
	for i, h := range r.Handles {
		handles[i] = collab.SocialHandle{
			Platform:      collab.Platform(h.Platform),
			Handle:        h.Handle,
			FollowerCount: h.FollowerCount,
		}
	}
	return handles
}

// Create creates a new influencer
func (h *InfluencerHandler) Create(c *gin.Context) {
	var req InfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	influencer, err := h.influencerService.CreateInfluencer(c.Request.Context(),
		req.Name, req.Email, req.Phone, req.handles(), req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, influencer)
}

// Get returns one influencer
func (h *InfluencerHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	influencer, err := h.influencerService.GetInfluencer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, influencer)
}

// List returns influencers with pagination
func (h *InfluencerHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	filter := collab.InfluencerFilter{
		Search: list.Search,
		Offset: list.Offset(),
		Limit:  list.PageSize,
	}
	if raw := c.Query("platform"); raw != "" {
		platform := collab.Platform(raw)
		if !platform.IsValid() {
			h.BadRequest(c, "invalid platform parameter")
			return
		}
		filter.Platform = &platform
	}

	influencers, total, err := h.influencerService.ListInfluencers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, influencers, total, list.Page, list.PageSize)
}

// Update replaces the editable fields of an influencer
func (h *InfluencerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req InfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	influencer, err := h.influencerService.UpdateInfluencer(c.Request.Context(), id,
		req.Name, req.Email, req.Phone, req.handles(), req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, influencer)
}

// Delete removes an influencer
func (h *InfluencerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.influencerService.DeleteInfluencer(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
