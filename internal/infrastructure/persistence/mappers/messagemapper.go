package mappers

import (
	"chamados/internal/domain/message"
	"chamados/internal/infrastructure/persistence/models"
	"chamados/internal/shared/authorization"
)

// MessageMapper handles the conversion between Message domain entities and persistence models.
type MessageMapper interface {
	ToModel(msg *message.Message) *models.MessageModel
	ToDomain(model *models.MessageModel) (*message.Message, error)
}

type MessageMapperImpl struct{}

func NewMessageMapper() MessageMapper {
	return &MessageMapperImpl{}
}

func (m *MessageMapperImpl) ToModel(msg *message.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		SenderID:   msg.SenderID(),
		SenderRole: msg.SenderRole().String(),
		Content:    msg.Content(),
		ReadByUser: msg.ReadByUser(),
		ReadByTech: msg.ReadByTech(),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}
}

func (m *MessageMapperImpl) ToDomain(model *models.MessageModel) (*message.Message, error) {
	return message.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.SenderID,
		authorization.ParseUserRole(model.SenderRole),
		model.Content,
		convertMillisToTime(model.CreatedAt),
		model.ReadByUser,
		model.ReadByTech,
	)
}
