package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	ledgerapp "github.com/karobar/backoffice/internal/application/ledger"
	"github.com/karobar/backoffice/internal/domain/ledger"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

// ClientHandler handles client CRUD endpoints
type ClientHandler struct {
	BaseHandler
	clientService *ledgerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *ledgerapp.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.POST("", h.Create)
		clients.GET("", h.List)
		clients.GET("/:id", h.Get)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
	}
}

// ClientRequest is the create/update payload for a client
type ClientRequest struct {
	Name                 string    `json:"name" binding:"required"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Address              string    `json:"address"`
	Type                 string    `json:"type" binding:"required"`
	ContractStartDate    time.Time `json:"contract_start_date"`
	ContractDurationDays int       `json:"contract_duration_days"`
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	client, err := h.clientService.CreateClient(c.Request.Context(),
		req.Name, req.Email, req.Phone, req.Address,
		ledger.ClientType(req.Type), req.ContractStartDate, req.ContractDurationDays)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, client)
}

// Get returns one client
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

// List returns clients with pagination
func (h *ClientHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	list.Normalize()

	filter := ledger.ClientFilter{
		Search: list.Search,
		Offset: list.Offset(),
		Limit:  list.PageSize,
	}
	if raw := c.Query("type"); raw != "" {
		clientType := ledger.ClientType(raw)
		if !clientType.IsValid() {
			h.BadRequest(c, "invalid type parameter")
			return
		}
		filter.Type = &clientType
	}

	clients, total, err := h.clientService.ListClients(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, clients, total, list.Page, list.PageSize)
}

// Update replaces the editable fields of a client
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	client, err := h.clientService.UpdateClient(c.Request.Context(), id,
		req.Name, req.Email, req.Phone, req.Address,
		ledger.ClientType(req.Type), req.ContractStartDate, req.ContractDurationDays)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

// Delete removes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
