package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	collabapp "github.com/karobar/backoffice/internal/application/collab"
	"github.com/karobar/backoffice/internal/domain/collab"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// CollaborationHandler handles collaboration CRUD and lifecycle endpoints
type CollaborationHandler struct {
	BaseHandler
	collaborationService *collabapp.CollaborationService
}

// NewCollaborationHandler creates a new CollaborationHandler
func NewCollaborationHandler(collaborationService *collabapp.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{collaborationService: collaborationService}
}

// RegisterRoutes registers collaboration routes
func (h *CollaborationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	collaborations := rg.Group("/collaborations")
	{
		collaborations.POST("", h.Create)
		collaborations.GET("", h.List)
		collaborations.GET("/:id", h.Get)
		collaborations.PUT("/:id", h.Update)
		collaborations.PATCH("/:id/status", h.Transition)
		collaborations.DELETE("/:id", h.Delete)
	}
}

// CreateCollaborationRequest is the create payload for a collaboration
type CreateCollaborationRequest struct {
	InfluencerID    int64      `json:"influencer_id" binding:"required"`
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	AgreedAmountNrs int64      `json:"agreed_amount_nrs"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Deliverables    string     `json:"deliverables"`
}

// UpdateCollaborationRequest is the update payload for a collaboration
type UpdateCollaborationRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	AgreedAmountNrs int64      `json:"agreed_amount_nrs"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Deliverables    string     `json:"deliverables"`
}

// TransitionRequest carries the target collaboration status
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create creates a new collaboration
func (h *CollaborationHandler) Create(c *gin.Context) {
	var req CreateCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	collaboration, err := h.collaborationService.CreateCollaboration(c.Request.Context(),
		req.InfluencerID, req.Title, req.Description, req.AgreedAmountNrs,
		req.StartDate, req.EndDate, req.Deliverables)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, collaboration)
}

// Get returns one collaboration
func (h *CollaborationHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	collaboration, err := h.collaborationService.GetCollaboration(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, collaboration)
}

// List returns collaborations with pagination
func (h *CollaborationHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	filter := collab.CollaborationFilter{
		Offset: list.Offset(),
		Limit:  list.PageSize,
	}
	if raw := c.Query("status"); raw != "" {
		status := collab.CollaborationStatus(raw)
		if !status.IsValid() {
			h.BadRequest(c, "invalid status parameter")
			return
		}
		filter.Status = &status
	}
	var err error
	if filter.InfluencerID, err = parseOptionalInt64Query(c, "influencer_id"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	collaborations, total, err := h.collaborationService.ListCollaborations(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, collaborations, total, list.Page, list.PageSize)
}

// Update replaces the editable fields of a collaboration
func (h *CollaborationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req UpdateCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	collaboration, err := h.collaborationService.UpdateCollaboration(c.Request.Context(), id,
		req.Title, req.Description, req.AgreedAmountNrs, req.StartDate, req.EndDate, req.Deliverables)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, collaboration)
}

// Transition moves a collaboration to a new lifecycle status
func (h *CollaborationHandler) Transition(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	status := collab.CollaborationStatus(req.Status)
	if !status.IsValid() {
		h.BadRequest(c, "invalid status")
		return
	}
	collaboration, err := h.collaborationService.TransitionCollaboration(c.Request.Context(), id, status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, collaboration)
}

// Delete removes a collaboration
func (h *CollaborationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.collaborationService.DeleteCollaboration(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
