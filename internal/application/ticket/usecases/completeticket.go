package usecases

import (
	"context"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/ticket"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type CompleteTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type CompleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      TransactionManager
	logger     logger.Interface
}

func NewCompleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CompleteTicketUseCase {
	return &CompleteTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CompleteTicketUseCase) Execute(ctx context.Context, cmd CompleteTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing complete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	if !cmd.Actor.HasAnyRole(authorization.RoleUser, authorization.RoleTech) {
		uc.logger.Warnw("actor not allowed to complete tickets", "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("access denied")
	}

	var t *ticket.Ticket
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		loaded, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		if !authorization.CanAccessTicket(cmd.Actor, loaded.OwnerID()) {
			uc.logger.Warnw("actor cannot complete ticket", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
			return errors.NewForbiddenError("access denied")
		}

		// Completing a closed ticket is a silent no-op, nothing is
		// written and the closing timestamp stays where it is.
		if loaded.Status().IsClosed() {
			t = loaded
			return nil
		}

		loaded.Complete()

		if err := uc.ticketRepo.Complete(txCtx, loaded.ID(), *loaded.ClosedAt()); err != nil {
			uc.logger.Errorw("failed to complete ticket", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		t = loaded
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket completed", "ticket_id", cmd.TicketID)

	return dto.ToTicketDTO(t), nil
}
