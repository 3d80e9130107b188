package message

import (
	"fmt"
	"strings"
	"time"

	"chamados/internal/shared/authorization"
)

// Message is a single chat entry in a ticket's log. Messages are
// immutable once created except for the two per-role read flags.
type Message struct {
	id         uint
	ticketID   uint
	senderID   uint
	senderRole authorization.UserRole
	content    string
	createdAt  time.Time
	readByUser bool
	readByTech bool
}

// NewMessage creates a message. The sender role always comes from the
// resolved actor, never from request input, so a user can never appear
// as a technician or vice versa.
func NewMessage(
	ticketID uint,
	senderID uint,
	senderRole authorization.UserRole,
	content string,
) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if !senderRole.IsUser() && !senderRole.IsTech() {
		return nil, fmt.Errorf("invalid sender role: %s", senderRole)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content is required")
	}

	return &Message{
		ticketID:   ticketID,
		senderID:   senderID,
		senderRole: senderRole,
		content:    content,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	senderID uint,
	senderRole authorization.UserRole,
	content string,
	createdAt time.Time,
	readByUser bool,
	readByTech bool,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}

	return &Message{
		id:         id,
		ticketID:   ticketID,
		senderID:   senderID,
		senderRole: senderRole,
		content:    content,
		createdAt:  createdAt,
		readByUser: readByUser,
		readByTech: readByTech,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) SenderID() uint {
	return m.senderID
}

func (m *Message) SenderRole() authorization.UserRole {
	return m.senderRole
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) ReadByUser() bool {
	return m.readByUser
}

func (m *Message) ReadByTech() bool {
	return m.readByTech
}

// ReadBy reports whether the given role has seen this message.
func (m *Message) ReadBy(role authorization.UserRole) bool {
	switch role {
	case authorization.RoleUser:
		return m.readByUser
	case authorization.RoleTech:
		return m.readByTech
	default:
		return false
	}
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
