package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	collabapp "github.com/karobar/backoffice/internal/application/collab"
	"github.com/karobar/backoffice/internal/domain/collab"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// PaymentHandler handles influencer payment endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *collabapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *collabapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Create)
		payments.GET("", h.List)
		payments.POST("/sweep-overdue", h.SweepOverdue)
		payments.GET("/:id", h.Get)
		payments.POST("/:id/pay", h.Pay)
		payments.POST("/:id/cancel", h.Cancel)
		payments.DELETE("/:id", h.Delete)
	}
}

// CreatePaymentRequest is the create payload for a payment
type CreatePaymentRequest struct {
	CollaborationID int64     `json:"collaboration_id" binding:"required"`
	AmountNrs       int64     `json:"amount_nrs" binding:"required"`
	DueDate         time.Time `json:"due_date" binding:"required"`
	Notes           string    `json:"notes"`
}

// Create creates a new pending payment
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	payment, err := h.paymentService.CreatePayment(c.Request.Context(),
		req.CollaborationID, req.AmountNrs, req.DueDate, req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// Get returns one payment
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// List returns payments with pagination
func (h *PaymentHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	filter := collab.PaymentFilter{
		Offset: list.Offset(),
		Limit:  list.PageSize,
	}
	if raw := c.Query("status"); raw != "" {
		status := collab.PaymentStatus(raw)
		if !status.IsValid() {
			h.BadRequest(c, "invalid status parameter")
			return
		}
		filter.Status = &status
	}
	var err error
	if filter.CollaborationID, err = parseOptionalInt64Query(c, "collaboration_id"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payments, total, err := h.paymentService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, payments, total, list.Page, list.PageSize)
}

// Pay marks a payment as paid
func (h *PaymentHandler) Pay(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	payment, err := h.paymentService.PayPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// Cancel cancels a payment
func (h *PaymentHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	payment, err := h.paymentService.CancelPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// SweepOverdue transitions every pending payment past its due date to
// OVERDUE. The daily scheduler runs the same sweep.
func (h *PaymentHandler) SweepOverdue(c *gin.Context) {
	swept, err := h.paymentService.SweepOverdue(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"swept": swept})
}

// Delete removes a payment
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
