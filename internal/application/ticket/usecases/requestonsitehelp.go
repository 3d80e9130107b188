package usecases

import (
	"context"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/ticket"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

// OnSiteHelpNotifier alerts the support team about an escalation.
// Delivery is best effort and never fails the request.
type OnSiteHelpNotifier interface {
	SendOnSiteHelpRequested(ticketID uint, submitterName, severity string) error
}

type RequestOnSiteHelpCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type RequestOnSiteHelpUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   OnSiteHelpNotifier
	txMgr      TransactionManager
	logger     logger.Interface
}

func NewRequestOnSiteHelpUseCase(
	ticketRepo ticket.TicketRepository,
	notifier OnSiteHelpNotifier,
	txMgr TransactionManager,
	logger logger.Interface,
) *RequestOnSiteHelpUseCase {
	return &RequestOnSiteHelpUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *RequestOnSiteHelpUseCase) Execute(ctx context.Context, cmd RequestOnSiteHelpCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing request on-site help use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	if !cmd.Actor.HasAnyRole(authorization.RoleUser) {
		uc.logger.Warnw("actor not allowed to request on-site help", "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("access denied")
	}

	var (
		t                *ticket.Ticket
		alreadyRequested bool
	)
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		loaded, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		if !authorization.CanAccessTicket(cmd.Actor, loaded.OwnerID()) {
			uc.logger.Warnw("actor cannot escalate ticket", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
			return errors.NewForbiddenError("access denied")
		}

		alreadyRequested = loaded.OnSiteHelp()

		// No status guard: the flag may be raised on closed tickets too.
		loaded.RequestOnSiteHelp()

		if err := uc.ticketRepo.SetOnSiteHelp(txCtx, loaded.ID()); err != nil {
			uc.logger.Errorw("failed to set on-site help flag", "ticket_id", cmd.TicketID, "error", err)
			return err
		}

		t = loaded
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Only the first raise notifies the support inbox.
	if uc.notifier != nil && !alreadyRequested {
		if err := uc.notifier.SendOnSiteHelpRequested(t.ID(), t.SubmitterName(), t.Severity().String()); err != nil {
			uc.logger.Warnw("failed to notify support inbox", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("on-site help requested", "ticket_id", cmd.TicketID)

	return dto.ToTicketDTO(t), nil
}
