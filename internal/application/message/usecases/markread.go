package usecases

import (
	"context"

	"chamados/internal/domain/message"
	"chamados/internal/domain/ticket"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type MarkReadCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type MarkReadUseCase struct {
	messageRepo message.MessageRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewMarkReadUseCase(
	messageRepo message.MessageRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *MarkReadUseCase {
	return &MarkReadUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) error {
	uc.logger.Infow("executing mark read use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	// Only the two chat roles carry a read flag. Admins are denied.
	if !cmd.Actor.HasAnyRole(authorization.RoleUser, authorization.RoleTech) {
		uc.logger.Warnw("actor not allowed to mark messages read", "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return errors.NewForbiddenError("access denied")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	if !authorization.CanAccessTicket(cmd.Actor, t.OwnerID()) {
		uc.logger.Warnw("actor cannot mark ticket read", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
		return errors.NewForbiddenError("access denied")
	}

	if err := uc.messageRepo.MarkAllRead(ctx, cmd.TicketID, cmd.Actor.Role); err != nil {
		uc.logger.Errorw("failed to mark messages read", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	return nil
}
