package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/karobar/backoffice/internal/application/ledger"
	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// StaffHandler handles staff CRUD endpoints
type StaffHandler struct {
	BaseHandler
	staffService *ledgerapp.StaffService
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staffService *ledgerapp.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// RegisterRoutes registers staff routes
func (h *StaffHandler) RegisterRoutes(rg *gin.RouterGroup) {
	staff := rg.Group("/staff")
	{
		staff.POST("", h.Create)
		staff.GET("", h.List)
		staff.GET("/:id", h.Get)
		staff.PUT("/:id", h.Update)
		staff.DELETE("/:id", h.Delete)
	}
}

// CreateStaffRequest is the create payload for a staff member
type CreateStaffRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Type             string `json:"type" binding:"required"`
	MonthlySalaryNrs int64  `json:"monthly_salary_nrs"`
}

// UpdateStaffRequest is the update payload for a staff member
type UpdateStaffRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Type             string `json:"type" binding:"required"`
	MonthlySalaryNrs int64  `json:"monthly_salary_nrs"`
	IsActive         bool   `json:"is_active"`
}

// Create creates a new staff member
func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	staff, err := h.staffService.CreateStaff(c.Request.Context(),
		req.Name, req.Email, req.Phone, ledger.StaffType(req.Type), req.MonthlySalaryNrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, staff)
}

// Get returns one staff member
func (h *StaffHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	staff, err := h.staffService.GetStaff(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, staff)
}

// List returns staff with pagination
func (h *StaffHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	filter := ledger.StaffFilter{
		ActiveOnly: c.Query("active") == "true",
		Offset:     list.Offset(),
		Limit:      list.PageSize,
	}
	if raw := c.Query("type"); raw != "" {
		staffType := ledger.StaffType(raw)
		if !staffType.IsValid() {
			h.BadRequest(c, "invalid type parameter")
			return
		}
		filter.Type = &staffType
	}

	staff, total, err := h.staffService.ListStaff(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, staff, total, list.Page, list.PageSize)
}

// Update replaces the editable fields of a staff member
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	staff, err := h.staffService.UpdateStaff(c.Request.Context(), id,
		req.Name, req.Email, req.Phone, ledger.StaffType(req.Type), req.MonthlySalaryNrs, req.IsActive)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, staff)
}

// Delete removes a staff member
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.staffService.DeleteStaff(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
