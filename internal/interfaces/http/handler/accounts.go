package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	accountsapp "github.com/karobar/backoffice/internal/application/accounts"
)

// AccountsHandler serves the aggregated account views and balance adjustments
type AccountsHandler struct {
	BaseHandler
	accountService *accountsapp.AccountService
}

// NewAccountsHandler creates a new AccountsHandler
func NewAccountsHandler(accountService *accountsapp.AccountService) *AccountsHandler {
	return &AccountsHandler{accountService: accountService}
}

// RegisterRoutes registers account routes
func (h *AccountsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	{
		accounts.GET("/summary", h.Summary)
		accounts.GET("/staff-work-payout-preview", h.PayoutPreview)
	}
	rg.POST("/clients/:id/account/adjust", h.AdjustClientAccount)
}

// Summary returns the whole-business financial summary
func (h *AccountsHandler) Summary(c *gin.Context) {
	summary, err := h.accountService.GetSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// PayoutPreview computes the month's work-basis payout preview
func (h *AccountsHandler) PayoutPreview(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		h.BadRequest(c, "invalid month parameter")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.BadRequest(c, "invalid year parameter")
		return
	}
	staffID, err := parseOptionalInt64Query(c, "staffId")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	preview, err := h.accountService.GetStaffWorkPayoutPreview(c.Request.Context(), month, year, staffID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, preview)
}

// AdjustAccountRequest carries signed balance deltas. Omitted fields mean
// zero delta.
type AdjustAccountRequest struct {
	LockedDelta  int64 `json:"lockedDelta"`
	AdvanceDelta int64 `json:"advanceDelta"`
}

// AdjustClientAccount atomically applies balance deltas to one client
func (h *AccountsHandler) AdjustClientAccount(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req AdjustAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	client, err := h.accountService.AdjustClientAccount(c.Request.Context(), id, req.LockedDelta, req.AdvanceDelta)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}
