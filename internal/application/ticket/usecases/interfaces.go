package usecases

import (
	"context"

	"chamados/internal/application/ticket/dto"
)

// TransactionManager runs a function inside a single database
// transaction. Repositories pick the transaction up from the context,
// so the ticket loaded for the access check and the write that follows
// see the same state.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type CompleteTicketExecutor interface {
	Execute(ctx context.Context, cmd CompleteTicketCommand) (*dto.TicketDTO, error)
}

type RequestOnSiteHelpExecutor interface {
	Execute(ctx context.Context, cmd RequestOnSiteHelpCommand) (*dto.TicketDTO, error)
}
