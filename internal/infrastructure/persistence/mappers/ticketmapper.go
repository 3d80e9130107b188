package mappers

import (
	"fmt"
	"time"

	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:            t.ID(),
		OwnerID:       t.OwnerID(),
		SubmitterName: t.SubmitterName(),
		Severity:      t.Severity().String(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		OnSiteHelp:    t.OnSiteHelp(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// Stored status strings are normalized on the way in, so rows written
// by older tooling with loose status values still load.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	severity, err := vo.NewSeverity(model.Severity)
	if err != nil {
		return nil, fmt.Errorf("stored severity for ticket %d is invalid: %w", model.ID, err)
	}
	status := vo.NormalizeStatus(model.Status)

	createdAt := convertMillisToTime(model.CreatedAt)

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := convertMillisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.OwnerID,
		model.SubmitterName,
		severity,
		model.Description,
		status,
		model.OnSiteHelp,
		createdAt,
		closedAt,
	)
}
