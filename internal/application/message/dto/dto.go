package dto

import (
	"time"

	"chamados/internal/domain/message"
)

type MessageDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	SenderID    uint      `json:"sender_id"`
	SenderRole  string    `json:"sender_role"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	ReadByUser  bool      `json:"read_by_user"`
	ReadByTech  bool      `json:"read_by_tech"`
	CreatedAt   time.Time `json:"created_at"`
}

type UnreadDTO struct {
	TicketID uint `json:"ticket_id"`
	Unread   int  `json:"unread"`
}

func ToMessageDTO(m *message.Message) *MessageDTO {
	if m == nil {
		return nil
	}

	return &MessageDTO{
		ID:         m.ID(),
		TicketID:   m.TicketID(),
		SenderID:   m.SenderID(),
		SenderRole: m.SenderRole().String(),
		Content:    m.Content(),
		ReadByUser: m.ReadByUser(),
		ReadByTech: m.ReadByTech(),
		CreatedAt:  m.CreatedAt(),
	}
}
