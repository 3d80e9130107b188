package message

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chamados/internal/application/message/usecases"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
	"chamados/internal/shared/utils"
)

type MessageHandler struct {
	appendMessageUC usecases.AppendMessageExecutor
	listMessagesUC  usecases.ListMessagesExecutor
	markReadUC      usecases.MarkReadExecutor
	computeUnreadUC usecases.ComputeUnreadExecutor
	logger          logger.Interface
}

func NewMessageHandler(
	appendMessageUC usecases.AppendMessageExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	markReadUC usecases.MarkReadExecutor,
	computeUnreadUC usecases.ComputeUnreadExecutor,
) *MessageHandler {
	return &MessageHandler{
		appendMessageUC: appendMessageUC,
		listMessagesUC:  listMessagesUC,
		markReadUC:      markReadUC,
		computeUnreadUC: computeUnreadUC,
		logger:          logger.NewLogger(),
	}
}

type AppendMessageRequest struct {
	Content string `json:"content"`
}

// AppendMessage handles POST /api/tickets/:id/messages
func (h *MessageHandler) AppendMessage(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for append message", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.AppendMessageCommand{
		Actor:    authorization.ActorFromContext(c),
		TicketID: ticketID,
		Content:  req.Content,
	}

	result, err := h.appendMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListMessages handles GET /api/tickets/:id/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListMessagesQuery{
		Actor:    authorization.ActorFromContext(c),
		TicketID: ticketID,
	}

	result, err := h.listMessagesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// MarkRead handles PATCH /api/tickets/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.MarkReadCommand{
		Actor:    authorization.ActorFromContext(c),
		TicketID: ticketID,
	}

	if err := h.markReadUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c)
}

// GetUnread handles GET /api/tickets/:id/unread
func (h *MessageHandler) GetUnread(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ComputeUnreadQuery{
		Actor:    authorization.ActorFromContext(c),
		TicketID: ticketID,
	}

	result, err := h.computeUnreadUC.Execute(c.Request.Context(), query)
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
