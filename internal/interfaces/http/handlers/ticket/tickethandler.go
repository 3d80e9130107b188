package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chamados/internal/application/ticket/usecases"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
	"chamados/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC      usecases.CreateTicketExecutor
	getTicketUC         usecases.GetTicketExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	completeTicketUC    usecases.CompleteTicketExecutor
	requestOnSiteHelpUC usecases.RequestOnSiteHelpExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	completeTicketUC usecases.CompleteTicketExecutor,
	requestOnSiteHelpUC usecases.RequestOnSiteHelpExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:      createTicketUC,
		getTicketUC:         getTicketUC,
		listTicketsUC:       listTicketsUC,
		completeTicketUC:    completeTicketUC,
		requestOnSiteHelpUC: requestOnSiteHelpUC,
		logger:              logger.NewLogger(),
	}
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := authorization.ActorFromContext(c)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		Actor:    authorization.ActorFromContext(c),
		TicketID: ticketID,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListAllTickets handles GET /api/tickets
func (h *TicketHandler) ListAllTickets(c *gin.Context) {
	h.listTickets(c, usecases.ScopeAll)
}

// ListOwnTickets handles GET /api/user/tickets
func (h *TicketHandler) ListOwnTickets(c *gin.Context) {
	h.listTickets(c, usecases.ScopeOwn)
}

func (h *TicketHandler) listTickets(c *gin.Context, scope usecases.ListScope) {
	query := usecases.ListTicketsQuery{
		Actor:  authorization.ActorFromContext(c),
		Scope:  scope,
		Status: c.Query("status"),
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// CompleteTicket handles PATCH /api/tickets/:id/complete
func (h *TicketHandler) CompleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CompleteTicketCommand{
		Actor:    authorization.ActorFromContext(c),
		TicketID: ticketID,
	}

	result, err := h.completeTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// RequestOnSiteHelp handles PATCH /api/tickets/:id/help
func (h *TicketHandler) RequestOnSiteHelp(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RequestOnSiteHelpCommand{
		Actor:    authorization.ActorFromContext(c),
		TicketID: ticketID,
	}

	result, err := h.requestOnSiteHelpUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
