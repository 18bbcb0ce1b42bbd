package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	ledgerapp "github.com/karobar/backoffice/internal/application/ledger"
	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// ExpenseHandler handles expense CRUD endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *ledgerapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *ledgerapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// RegisterRoutes registers expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.Create)
		expenses.GET("", h.List)
		expenses.GET("/:id", h.Get)
		expenses.PUT("/:id", h.Update)
		expenses.DELETE("/:id", h.Delete)
	}
}

// CreateExpenseRequest is the create payload for an expense record
type CreateExpenseRequest struct {
	Description string    `json:"description" binding:"required"`
	AmountNrs   int64     `json:"amount_nrs" binding:"required"`
	Source      string    `json:"source" binding:"required"`
	StaffID     *int64    `json:"staff_id"`
	PaidAt      time.Time `json:"paid_at"`
	Notes       string    `json:"notes"`
}

// UpdateExpenseRequest is the update payload. Source and staff attribution
// are fixed at creation.
type UpdateExpenseRequest struct {
	Description string    `json:"description" binding:"required"`
	AmountNrs   int64     `json:"amount_nrs" binding:"required"`
	PaidAt      time.Time `json:"paid_at"`
	Notes       string    `json:"notes"`
}

// Create creates a new expense record
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	paidAt := req.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	expense, err := h.expenseService.CreateExpense(c.Request.Context(),
		req.Description, req.AmountNrs, ledger.ExpenseSource(req.Source), req.StaffID, paidAt, req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, expense)
}

// Get returns one expense record
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// List returns expense records with pagination
func (h *ExpenseHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	filter := ledger.ExpenseFilter{
		Offset: list.Offset(),
		Limit:  list.PageSize,
	}
	if raw := c.Query("source"); raw != "" {
		source := ledger.ExpenseSource(raw)
		if !source.IsValid() {
			h.BadRequest(c, "invalid source parameter")
			return
		}
		filter.Source = &source
	}
	var err error
	if filter.StaffID, err = parseOptionalInt64Query(c, "staff_id"); err != nil {
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

	expenses, total, err := h.expenseService.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, expenses, total, list.Page, list.PageSize)
}

// Update replaces the editable fields of an expense record
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id,
		req.Description, req.AmountNrs, req.PaidAt, req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// Delete removes an expense record
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
