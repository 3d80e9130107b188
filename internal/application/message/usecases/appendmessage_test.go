package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamados/internal/domain/message"
	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
)

func ownedTicket(t *testing.T, id, ownerID uint) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.ReconstructTicket(id, ownerID, "Maria", vo.SeverityMedium, "slow network", vo.StatusOpen, false, time.Now(), nil)
	require.NoError(t, err)
	return tkt
}

func TestAppendMessageUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name  string
		actor authorization.Actor
	}{
		{name: "owner posts", actor: authorization.Actor{ID: 5, Role: authorization.RoleUser}},
		{name: "tech posts", actor: authorization.Actor{ID: 2, Role: authorization.RoleTech}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *message.Message
			mockMsgRepo := &mockMessageRepository{
				SaveFunc: func(ctx context.Context, msg *message.Message) error {
					require.NoError(t, msg.SetID(7))
					saved = msg
					return nil
				},
			}
			mockTktRepo := &mockTicketRepository{
				FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return ownedTicket(t, ticketID, 5), nil
				},
			}

			useCase := NewAppendMessageUseCase(mockMsgRepo, mockTktRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), AppendMessageCommand{
				Actor:    tt.actor,
				TicketID: 42,
				Content:  "any update on this?",
			})

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(7), result.ID)
			assert.Equal(t, tt.actor.Role.String(), result.SenderRole, "sender role comes from the actor")
			assert.False(t, result.ReadByUser)
			assert.False(t, result.ReadByTech)

			require.NotNil(t, saved)
			assert.Equal(t, tt.actor.ID, saved.SenderID())
		})
	}
}

func TestAppendMessageUseCase_Execute_BlankContentRejectedBeforeStore(t *testing.T) {
	findCalled := false
	mockTktRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			findCalled = true
			return ownedTicket(t, ticketID, 5), nil
		},
	}

	useCase := NewAppendMessageUseCase(&mockMessageRepository{}, mockTktRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AppendMessageCommand{
		Actor:    authorization.Actor{ID: 5, Role: authorization.RoleUser},
		TicketID: 42,
		Content:  "   ",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "message content is required", errors.GetAppError(err).Message)
	assert.False(t, findCalled, "blank content is rejected before touching the store")
}

func TestAppendMessageUseCase_Execute_AccessDenied(t *testing.T) {
	tests := []struct {
		name  string
		actor authorization.Actor
	}{
		{name: "foreign owner denied", actor: authorization.Actor{ID: 9, Role: authorization.RoleUser}},
		{name: "admin denied", actor: authorization.Actor{ID: 1, Role: authorization.RoleAdmin}},
		{name: "anonymous denied", actor: authorization.Actor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveCalled := false
			mockMsgRepo := &mockMessageRepository{
				SaveFunc: func(ctx context.Context, msg *message.Message) error {
					saveCalled = true
					return nil
				},
			}
			mockTktRepo := &mockTicketRepository{
				FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return ownedTicket(t, ticketID, 5), nil
				},
			}

			useCase := NewAppendMessageUseCase(mockMsgRepo, mockTktRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), AppendMessageCommand{
				Actor:    tt.actor,
				TicketID: 42,
				Content:  "hello",
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsForbiddenError(err))
			assert.Equal(t, "access denied", errors.GetAppError(err).Message)
			assert.False(t, saveCalled)
		})
	}
}

func TestAppendMessageUseCase_Execute_TicketNotFound(t *testing.T) {
	mockTktRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewAppendMessageUseCase(&mockMessageRepository{}, mockTktRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AppendMessageCommand{
		Actor:    authorization.Actor{ID: 2, Role: authorization.RoleTech},
		TicketID: 999,
		Content:  "hello",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
