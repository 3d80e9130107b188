package usecases

import (
	"context"

	"chamados/internal/application/message/dto"
	"chamados/internal/domain/message"
	"chamados/internal/domain/ticket"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type ComputeUnreadQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

// ComputeUnreadUseCase derives the unread count from the full message
// log on every call. Nothing is cached, so the count always reflects
// the store.
type ComputeUnreadUseCase struct {
	messageRepo message.MessageRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewComputeUnreadUseCase(
	messageRepo message.MessageRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ComputeUnreadUseCase {
	return &ComputeUnreadUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *ComputeUnreadUseCase) Execute(ctx context.Context, query ComputeUnreadQuery) (*dto.UnreadDTO, error) {
	uc.logger.Debugw("executing compute unread use case", "ticket_id", query.TicketID, "actor_id", query.Actor.ID)

	if !query.Actor.HasAnyRole(authorization.RoleUser, authorization.RoleTech) {
		return nil, errors.NewForbiddenError("access denied")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	if !authorization.CanAccessTicket(query.Actor, t.OwnerID()) {
		return nil, errors.NewForbiddenError("access denied")
	}

	msgs, err := uc.messageRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return &dto.UnreadDTO{
		TicketID: query.TicketID,
		Unread:   message.CountUnread(msgs, query.Actor.Role),
	}, nil
}
