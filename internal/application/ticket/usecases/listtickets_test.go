package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
)

func TestListTicketsUseCase_Execute_AllScope(t *testing.T) {
	var gotFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListByStatusFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			gotFilter = filter
			return []*ticket.Ticket{ownedTicket(t, 2, 5), ownedTicket(t, 1, 6)}, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{
		Actor:  authorization.Actor{ID: 2, Role: authorization.RoleTech},
		Scope:  ScopeAll,
		Status: "open",
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, vo.StatusOpen, gotFilter.Status)
	assert.Nil(t, gotFilter.OwnerID, "all scope carries no owner filter")
}

func TestListTicketsUseCase_Execute_OwnScope(t *testing.T) {
	var gotFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListByStatusFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			gotFilter = filter
			return []*ticket.Ticket{ownedTicket(t, 1, 5)}, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{
		Actor:  authorization.Actor{ID: 5, Role: authorization.RoleUser},
		Scope:  ScopeOwn,
		Status: "closed",
	})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, vo.StatusClosed, gotFilter.Status)
	require.NotNil(t, gotFilter.OwnerID)
	assert.Equal(t, uint(5), *gotFilter.OwnerID)
}

func TestListTicketsUseCase_Execute_StatusNormalization(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected vo.TicketStatus
	}{
		{name: "empty defaults to open", status: "", expected: vo.StatusOpen},
		{name: "unknown falls back to open", status: "pending", expected: vo.StatusOpen},
		{name: "closed honored", status: "closed", expected: vo.StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter ticket.TicketFilter
			mockRepo := &mockTicketRepository{
				ListByStatusFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
					gotFilter = filter
					return nil, nil
				},
			}

			useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
			_, err := useCase.Execute(context.Background(), ListTicketsQuery{
				Actor:  authorization.Actor{ID: 2, Role: authorization.RoleTech},
				Scope:  ScopeAll,
				Status: tt.status,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, gotFilter.Status)
		})
	}
}

func TestListTicketsUseCase_Execute_ScopeRoleDenied(t *testing.T) {
	tests := []struct {
		name  string
		actor authorization.Actor
		scope ListScope
	}{
		{name: "user cannot list all", actor: authorization.Actor{ID: 5, Role: authorization.RoleUser}, scope: ScopeAll},
		{name: "tech cannot list own", actor: authorization.Actor{ID: 2, Role: authorization.RoleTech}, scope: ScopeOwn},
		{name: "admin cannot list all", actor: authorization.Actor{ID: 1, Role: authorization.RoleAdmin}, scope: ScopeAll},
		{name: "anonymous cannot list own", actor: authorization.Actor{}, scope: ScopeOwn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listCalled := false
			mockRepo := &mockTicketRepository{
				ListByStatusFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
					listCalled = true
					return nil, nil
				},
			}

			useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), ListTicketsQuery{Actor: tt.actor, Scope: tt.scope})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsForbiddenError(err))
			assert.False(t, listCalled)
		})
	}
}

func TestListTicketsUseCase_Execute_InvalidScope(t *testing.T) {
	useCase := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{
		Actor: authorization.Actor{ID: 2, Role: authorization.RoleTech},
		Scope: ListScope("everything"),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
