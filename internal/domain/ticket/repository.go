package ticket

import (
	"context"
	"time"

	vo "chamados/internal/domain/ticket/valueobjects"
)

// TicketRepository persists tickets. The two mutations are targeted
// single-column writes: Complete touches only status and closed_at and
// skips rows that are already closed, SetOnSiteHelp touches only the
// escalation flag. A stale in-memory snapshot therefore cannot reopen
// a closed ticket or clear the flag.
type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Complete(ctx context.Context, ticketID uint, closedAt time.Time) error
	SetOnSiteHelp(ctx context.Context, ticketID uint) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	ListByStatus(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

// TicketFilter scopes a listing. A nil OwnerID means all tickets
// (technician scope); a set OwnerID restricts to that user's tickets.
// Results are ordered by identifier descending, most recent first.
type TicketFilter struct {
	Status  vo.TicketStatus
	OwnerID *uint
}
