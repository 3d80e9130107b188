package usecases

import (
	"context"

	"chamados/internal/application/message/dto"
)

type AppendMessageExecutor interface {
	Execute(ctx context.Context, cmd AppendMessageCommand) (*dto.MessageDTO, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd MarkReadCommand) error
}

type ComputeUnreadExecutor interface {
	Execute(ctx context.Context, query ComputeUnreadQuery) (*dto.UnreadDTO, error)
}
