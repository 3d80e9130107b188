package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"chamados/internal/domain/message"
	"chamados/internal/infrastructure/persistence/mappers"
	"chamados/internal/infrastructure/persistence/models"
	"chamados/internal/shared/authorization"
	db "chamados/internal/shared/db"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, msg *message.Message) error {
	model := r.mapper.ToModel(msg)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	if err := msg.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *MessageRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*message.Message, error) {
	var messageModels []models.MessageModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*message.Message, len(messageModels))
	for i, model := range messageModels {
		msg, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		messages[i] = msg
	}

	return messages, nil
}

func (r *MessageRepository) MarkAllRead(ctx context.Context, ticketID uint, role authorization.UserRole) error {
	var column string
	switch role {
	case authorization.RoleUser:
		column = "read_by_user"
	case authorization.RoleTech:
		column = "read_by_tech"
	default:
		return fmt.Errorf("invalid role for read marking: %s", role)
	}

	tx := db.GetTxFromContext(ctx, r.db)

	// Every message of the ticket is flagged, own messages included.
	// The update is idempotent, so no row filtering is needed.
	result := tx.
		Model(&models.MessageModel{}).
		Where("ticket_id = ?", ticketID).
		Update(column, true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark messages read: %w", result.Error)
	}

	return nil
}
