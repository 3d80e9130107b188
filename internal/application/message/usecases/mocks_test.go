package usecases

import (
	"context"
	"time"

	"chamados/internal/domain/message"
	"chamados/internal/domain/ticket"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/logger"
)

type mockMessageRepository struct {
	SaveFunc           func(ctx context.Context, m *message.Message) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*message.Message, error)
	MarkAllReadFunc    func(ctx context.Context, ticketID uint, role authorization.UserRole) error
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *message.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*message.Message, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockMessageRepository) MarkAllRead(ctx context.Context, ticketID uint, role authorization.UserRole) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, ticketID, role)
	}
	return nil
}

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	CompleteFunc      func(ctx context.Context, ticketID uint, closedAt time.Time) error
	SetOnSiteHelpFunc func(ctx context.Context, ticketID uint) error
	FindByIDFunc      func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListByStatusFunc  func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Complete(ctx context.Context, ticketID uint, closedAt time.Time) error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, ticketID, closedAt)
	}
	return nil
}

func (m *mockTicketRepository) SetOnSiteHelp(ctx context.Context, ticketID uint) error {
	if m.SetOnSiteHelpFunc != nil {
		return m.SetOnSiteHelpFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByStatus(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, filter)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
