package usecases

import (
	"context"

	"chamados/internal/application/message/dto"
	"chamados/internal/domain/message"
	"chamados/internal/domain/ticket"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
	"chamados/internal/shared/services/markdown"
)

type ListMessagesQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type ListMessagesUseCase struct {
	messageRepo message.MessageRepository
	ticketRepo  ticket.TicketRepository
	markdownSvc markdown.Service
	logger      logger.Interface
}

func NewListMessagesUseCase(
	messageRepo message.MessageRepository,
	ticketRepo ticket.TicketRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error) {
	uc.logger.Infow("executing list messages use case", "ticket_id", query.TicketID, "actor_id", query.Actor.ID)

	if !query.Actor.HasAnyRole(authorization.RoleUser, authorization.RoleTech) {
		uc.logger.Warnw("actor not allowed to read messages", "actor_id", query.Actor.ID, "role", query.Actor.Role)
		return nil, errors.NewForbiddenError("access denied")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	if !authorization.CanAccessTicket(query.Actor, t.OwnerID()) {
		uc.logger.Warnw("actor cannot read ticket messages", "ticket_id", query.TicketID, "actor_id", query.Actor.ID)
		return nil, errors.NewForbiddenError("access denied")
	}

	msgs, err := uc.messageRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	dtos := make([]*dto.MessageDTO, len(msgs))
	for i, msg := range msgs {
		d := dto.ToMessageDTO(msg)
		if uc.markdownSvc != nil {
			rendered, err := uc.markdownSvc.ToHTMLSanitized(msg.Content())
			if err != nil {
				uc.logger.Warnw("failed to render message content", "message_id", msg.ID(), "error", err)
			} else {
				d.ContentHTML = rendered
			}
		}
		dtos[i] = d
	}

	return dtos, nil
}
