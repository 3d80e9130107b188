package ticket

import (
	"fmt"
	"time"

	vo "chamados/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id            uint
	ownerID       uint
	submitterName string
	severity      vo.Severity
	description   string
	status        vo.TicketStatus
	onSiteHelp    bool
	createdAt     time.Time
	closedAt      *time.Time
}

func NewTicket(
	ownerID uint,
	submitterName string,
	severity vo.Severity,
	description string,
) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(submitterName) == 0 {
		return nil, fmt.Errorf("submitter name is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("severity is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	return &Ticket{
		ownerID:       ownerID,
		submitterName: submitterName,
		severity:      severity,
		description:   description,
		status:        vo.StatusOpen,
		onSiteHelp:    false,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructTicket(
	id uint,
	ownerID uint,
	submitterName string,
	severity vo.Severity,
	description string,
	status vo.TicketStatus,
	onSiteHelp bool,
	createdAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:            id,
		ownerID:       ownerID,
		submitterName: submitterName,
		severity:      severity,
		description:   description,
		status:        status,
		onSiteHelp:    onSiteHelp,
		createdAt:     createdAt,
		closedAt:      closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) SubmitterName() string {
	return t.submitterName
}

func (t *Ticket) Severity() vo.Severity {
	return t.severity
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) OnSiteHelp() bool {
	return t.onSiteHelp
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Complete closes the ticket. Closing an already-closed ticket is a
// silent no-op: the status and the closing timestamp are stable after
// the first close.
func (t *Ticket) Complete() {
	if t.status.IsClosed() {
		return
	}

	t.status = vo.StatusClosed
	now := time.Now()
	t.closedAt = &now
}

// RequestOnSiteHelp raises the one-way escalation flag. It is allowed
// regardless of status, closed tickets included.
func (t *Ticket) RequestOnSiteHelp() {
	t.onSiteHelp = true
}
