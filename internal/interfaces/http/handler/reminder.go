package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	reminderapp "github.com/karobar/backoffice/internal/application/reminder"
	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// ReminderHandler handles admin reminder endpoints
type ReminderHandler struct {
	BaseHandler
	reminderService *reminderapp.ReminderService
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminderService *reminderapp.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// RegisterRoutes registers reminder routes
func (h *ReminderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reminders := rg.Group("/reminders")
	{
		reminders.POST("", h.Create)
		reminders.GET("", h.List)
		reminders.GET("/active", h.ListActive)
		reminders.GET("/dry-run", h.DryRun)
		reminders.GET("/:id", h.Get)
		reminders.PATCH("/:id", h.Update)
		reminders.PATCH("/:id/complete", h.Complete)
		reminders.DELETE("/:id", h.Delete)
	}
}

// ReminderRequest is the create/update payload for a general reminder
type ReminderRequest struct {
	Title    string     `json:"title" binding:"required"`
	Message  string     `json:"message"`
	Priority string     `json:"priority" binding:"required"`
	DueDate  *time.Time `json:"due_date"`
	ClientID *int64     `json:"client_id"`
	StaffID  *int64     `json:"staff_id"`
}

// Create creates a general reminder
func (h *ReminderHandler) Create(c *gin.Context) {
	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	reminder, err := h.reminderService.CreateReminder(c.Request.Context(),
		req.Title, req.Message, ledger.ReminderPriority(req.Priority), req.DueDate, req.ClientID, req.StaffID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, reminder)
}

// Get returns one reminder
func (h *ReminderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	reminder, err := h.reminderService.GetReminder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reminder)
}

// List returns reminders with pagination
func (h *ReminderHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	filter := ledger.ReminderFilter{
		PendingOnly:   c.Query("pending") == "true",
		CompletedOnly: c.Query("completed") == "true",
		Offset:        list.Offset(),
		Limit:         list.PageSize,
	}
	if raw := c.Query("type"); raw != "" {
		reminderType := ledger.ReminderType(raw)
		if !reminderType.IsValid() {
			h.BadRequest(c, "invalid type parameter")
			return
		}
		filter.Type = &reminderType
	}
	if raw := c.Query("priority"); raw != "" {
		priority := ledger.ReminderPriority(raw)
		if !priority.IsValid() {
			h.BadRequest(c, "invalid priority parameter")
			return
		}
		filter.Priority = &priority
	}
	var err error
	if filter.ClientID, err = parseOptionalInt64Query(c, "client_id"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reminders, total, err := h.reminderService.ListReminders(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, reminders, total, list.Page, list.PageSize)
}

// ListActive returns all uncompleted reminders
func (h *ReminderHandler) ListActive(c *gin.Context) {
	reminders, err := h.reminderService.ListActiveReminders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reminders)
}

// DryRun previews the contract expiry scan without writing anything
func (h *ReminderHandler) DryRun(c *gin.Context) {
	result, err := h.reminderService.DryRunExpiryScan(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Update replaces the editable fields of a reminder
func (h *ReminderHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	reminder, err := h.reminderService.UpdateReminder(c.Request.Context(), id,
		req.Title, req.Message, ledger.ReminderPriority(req.Priority), req.DueDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reminder)
}

// Complete marks a reminder as done
func (h *ReminderHandler) Complete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	reminder, err := h.reminderService.CompleteReminder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reminder)
}

// Delete removes a reminder
func (h *ReminderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.reminderService.DeleteReminder(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
