package usecases

import (
	"context"
	"strings"

	"chamados/internal/application/message/dto"
	"chamados/internal/domain/message"
	"chamados/internal/domain/ticket"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type AppendMessageCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Content  string
}

type AppendMessageUseCase struct {
	messageRepo message.MessageRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewAppendMessageUseCase(
	messageRepo message.MessageRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *AppendMessageUseCase {
	return &AppendMessageUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *AppendMessageUseCase) Execute(ctx context.Context, cmd AppendMessageCommand) (*dto.MessageDTO, error) {
	uc.logger.Infow("executing append message use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	if !cmd.Actor.HasAnyRole(authorization.RoleUser, authorization.RoleTech) {
		uc.logger.Warnw("actor not allowed to send messages", "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("access denied")
	}

	if strings.TrimSpace(cmd.Content) == "" {
		return nil, errors.NewValidationError("message content is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if !authorization.CanAccessTicket(cmd.Actor, t.OwnerID()) {
		uc.logger.Warnw("actor cannot post to ticket", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("access denied")
	}

	// Sender role comes from the resolved actor, not the payload.
	msg, err := message.NewMessage(cmd.TicketID, cmd.Actor.ID, cmd.Actor.Role, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to create message entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, msg); err != nil {
		uc.logger.Errorw("failed to save message", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("message appended", "ticket_id", cmd.TicketID, "message_id", msg.ID())

	return dto.ToMessageDTO(msg), nil
}
