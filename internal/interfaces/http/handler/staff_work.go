package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	ledgerapp "github.com/karobar/backoffice/internal/application/ledger"
	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// StaffWorkHandler handles performed-work endpoints
type StaffWorkHandler struct {
	BaseHandler
	staffWorkService *ledgerapp.StaffWorkService
}

// NewStaffWorkHandler creates a new StaffWorkHandler
func NewStaffWorkHandler(staffWorkService *ledgerapp.StaffWorkService) *StaffWorkHandler {
	return &StaffWorkHandler{staffWorkService: staffWorkService}
}

// RegisterRoutes registers staff work routes
func (h *StaffWorkHandler) RegisterRoutes(rg *gin.RouterGroup) {
	works := rg.Group("/staff-works")
	{
		works.POST("", h.Create)
		works.GET("", h.List)
		works.GET("/:id", h.Get)
		works.DELETE("/:id", h.Delete)
	}
}

// CreateStaffWorkRequest records performed work. Either work_item_id or
// title must be present, never both.
type CreateStaffWorkRequest struct {
	StaffID     int64     `json:"staff_id" binding:"required"`
	WorkItemID  *int64    `json:"work_item_id"`
	ClientID    *int64    `json:"client_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity" binding:"required"`
	UnitRateNrs int64     `json:"unit_rate_nrs"`
	PerformedAt time.Time `json:"performed_at"`
}

// Create records performed work
func (h *StaffWorkHandler) Create(c *gin.Context) {
	var req CreateStaffWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	performedAt := req.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now()
	}

	work, err := h.staffWorkService.CreateStaffWork(c.Request.Context(), ledgerapp.CreateStaffWorkInput{
		StaffID:     req.StaffID,
		WorkItemID:  req.WorkItemID,
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitRateNrs: req.UnitRateNrs,
		PerformedAt: performedAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, work)
}

// Get returns one staff work row
func (h *StaffWorkHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	work, err := h.staffWorkService.GetStaffWork(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, work)
}

// List returns staff work rows with pagination
func (h *StaffWorkHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	filter := ledger.StaffWorkFilter{
		Offset: list.Offset(),
		Limit:  list.PageSize,
	}
	var err error
	if filter.StaffID, err = parseOptionalInt64Query(c, "staff_id"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.ClientID, err = parseOptionalInt64Query(c, "client_id"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.From, err = parseOptionalTimeQuery(c, "from"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.To, err = parseOptionalTimeQuery(c, "to"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	works, total, err := h.staffWorkService.ListStaffWork(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, works, total, list.Page, list.PageSize)
}

// Delete removes a staff work row
func (h *StaffWorkHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.staffWorkService.DeleteStaffWork(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
