package message

import (
	"context"

	"chamados/internal/shared/authorization"
)

type MessageRepository interface {
	Save(ctx context.Context, message *Message) error

	// ListByTicketID returns the full log for a ticket in creation
	// order, ascending, ties broken by identifier. No pagination: the
	// log is finite and refetched whole on every call.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)

	// MarkAllRead flips the read flag of the given role on every
	// message of the ticket. Coarse and idempotent: repeated calls are
	// a fixed point after the first.
	MarkAllRead(ctx context.Context, ticketID uint, role authorization.UserRole) error
}
