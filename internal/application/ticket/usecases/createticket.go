package usecases

import (
	"context"
	"strings"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor         authorization.Actor
	SubmitterName string
	Severity      string
	Description   string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "owner_id", cmd.Actor.ID)

	if !cmd.Actor.HasAnyRole(authorization.RoleUser) {
		uc.logger.Warnw("actor not allowed to create tickets", "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("access denied")
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Actor.ID,
		cmd.SubmitterName,
		vo.Severity(cmd.Severity),
		cmd.Description,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// Read back the persisted row so the response carries exactly what
	// the store assigned, id and timestamps included.
	persisted, err := uc.ticketRepo.FindByID(ctx, newTicket.ID())
	if err != nil {
		uc.logger.Errorw("failed to read back created ticket", "ticket_id", newTicket.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", persisted.ID())

	return dto.ToTicketDTO(persisted), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if strings.TrimSpace(cmd.SubmitterName) == "" {
		return errors.NewValidationError("name is required")
	}

	if strings.TrimSpace(cmd.Severity) == "" {
		return errors.NewValidationError("severity is required")
	}

	if strings.TrimSpace(cmd.Description) == "" {
		return errors.NewValidationError("description is required")
	}

	return nil
}
