package usecases

import (
	"context"

	"chamados/internal/application/ticket/dto"
	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

// ListScope selects which tickets a listing covers.
type ListScope string

const (
	// ScopeAll lists every ticket. Technicians only.
	ScopeAll ListScope = "all"
	// ScopeOwn lists the actor's own tickets. Users only.
	ScopeOwn ListScope = "own"
)

type ListTicketsQuery struct {
	Actor  authorization.Actor
	Scope  ListScope
	Status string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	uc.logger.Infow("executing list tickets use case",
		"actor_id", query.Actor.ID,
		"scope", query.Scope,
		"status", query.Status)

	filter := ticket.TicketFilter{
		// Unknown status values fall back to open rather than erroring,
		// so a stale or fat-fingered query still answers.
		Status: vo.NormalizeStatus(query.Status),
	}

	switch query.Scope {
	case ScopeAll:
		if !query.Actor.HasAnyRole(authorization.RoleTech) {
			uc.logger.Warnw("actor not allowed to list all tickets", "actor_id", query.Actor.ID, "role", query.Actor.Role)
			return nil, errors.NewForbiddenError("access denied")
		}
	case ScopeOwn:
		if !query.Actor.HasAnyRole(authorization.RoleUser) {
			uc.logger.Warnw("actor not allowed to list own tickets", "actor_id", query.Actor.ID, "role", query.Actor.Role)
			return nil, errors.NewForbiddenError("access denied")
		}
		ownerID := query.Actor.ID
		filter.OwnerID = &ownerID
	default:
		return nil, errors.NewValidationError("invalid list scope")
	}

	tickets, err := uc.ticketRepo.ListByStatus(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return dto.ToTicketDTOs(tickets), nil
}
