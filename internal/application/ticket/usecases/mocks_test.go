package usecases

import (
	"context"
	"time"

	"chamados/internal/domain/ticket"
	"chamados/internal/shared/logger"
)

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

type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockNotifier struct {
	SendOnSiteHelpRequestedFunc func(ticketID uint, submitterName, severity string) error
}

func (m *mockNotifier) SendOnSiteHelpRequested(ticketID uint, submitterName, severity string) error {
	if m.SendOnSiteHelpRequestedFunc != nil {
		return m.SendOnSiteHelpRequestedFunc(ticketID, submitterName, severity)
	}
	return nil
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
