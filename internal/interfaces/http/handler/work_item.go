package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/karobar/backoffice/internal/application/ledger"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// WorkItemHandler handles billable work item CRUD endpoints
type WorkItemHandler struct {
	BaseHandler
	workItemService *ledgerapp.WorkItemService
}

// NewWorkItemHandler creates a new WorkItemHandler
func NewWorkItemHandler(workItemService *ledgerapp.WorkItemService) *WorkItemHandler {
	return &WorkItemHandler{workItemService: workItemService}
}

// RegisterRoutes registers work item routes
func (h *WorkItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/work-items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Get)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// CreateWorkItemRequest is the create payload for a work item
type CreateWorkItemRequest struct {
	Title   string `json:"title" binding:"required"`
	RateNrs int64  `json:"rate_nrs"`
}

// UpdateWorkItemRequest is the update payload for a work item
type UpdateWorkItemRequest struct {
	Title    string `json:"title" binding:"required"`
	RateNrs  int64  `json:"rate_nrs"`
	IsActive bool   `json:"is_active"`
}

// Create creates a new work item
func (h *WorkItemHandler) Create(c *gin.Context) {
	var req CreateWorkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	item, err := h.workItemService.CreateWorkItem(c.Request.Context(), req.Title, req.RateNrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Get returns one work item
func (h *WorkItemHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	item, err := h.workItemService.GetWorkItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// List returns work items with pagination
func (h *WorkItemHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	items, total, err := h.workItemService.ListWorkItems(c.Request.Context(),
		c.Query("active") == "true", list.Offset(), list.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, list.Page, list.PageSize)
}

// Update replaces the editable fields of a work item
func (h *WorkItemHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req UpdateWorkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	item, err := h.workItemService.UpdateWorkItem(c.Request.Context(), id, req.Title, req.RateNrs, req.IsActive)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete removes a work item
func (h *WorkItemHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.workItemService.DeleteWorkItem(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
