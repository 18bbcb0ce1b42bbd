package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	ledgerapp "github.com/karobar/backoffice/internal/application/ledger"
	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// IncomeHandler handles income CRUD endpoints
type IncomeHandler struct {
	BaseHandler
	incomeService *ledgerapp.IncomeService
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService *ledgerapp.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// RegisterRoutes registers income routes
func (h *IncomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.Create)
		incomes.GET("", h.List)
		incomes.GET("/:id", h.Get)
		incomes.PUT("/:id", h.Update)
		incomes.DELETE("/:id", h.Delete)
	}
}

// IncomeRequest is the create/update payload for an income record
type IncomeRequest struct {
	Description string    `json:"description" binding:"required"`
	AmountNrs   int64     `json:"amount_nrs" binding:"required"`
	ClientID    int64     `json:"client_id" binding:"required"`
	ReceivedAt  time.Time `json:"received_at"`
	Notes       string    `json:"notes"`
}

// Create creates a new income record
func (h *IncomeHandler) Create(c *gin.Context) {
	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	receivedAt := req.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	income, err := h.incomeService.CreateIncome(c.Request.Context(),
		req.Description, req.AmountNrs, req.ClientID, receivedAt, req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, income)
}

// Get returns one income record
func (h *IncomeHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	income, err := h.incomeService.GetIncome(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, income)
}

// List returns income records with pagination
func (h *IncomeHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	filter := ledger.IncomeFilter{
		Offset: list.Offset(),
		Limit:  list.PageSize,
	}
	var err error
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

	incomes, total, err := h.incomeService.ListIncomes(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, incomes, total, list.Page, list.PageSize)
}

// Update replaces the editable fields of an income record
func (h *IncomeHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	income, err := h.incomeService.UpdateIncome(c.Request.Context(), id,
		req.Description, req.AmountNrs, req.ClientID, req.ReceivedAt, req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, income)
}

// Delete removes an income record
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.incomeService.DeleteIncome(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
