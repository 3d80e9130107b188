package dto

import (
	"time"

	"chamados/internal/domain/ticket"
)

type TicketDTO struct {
	ID            uint       `json:"id"`
	OwnerID       uint       `json:"owner_id"`
	SubmitterName string     `json:"submitter_name"`
	Severity      string     `json:"severity"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	OnSiteHelp    bool       `json:"on_site_help"`
	CreatedAt     time.Time  `json:"created_at"`
	ClosedAt      *time.Time `json:"closed_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:            t.ID(),
		OwnerID:       t.OwnerID(),
		SubmitterName: t.SubmitterName(),
		Severity:      t.Severity().String(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		OnSiteHelp:    t.OnSiteHelp(),
		CreatedAt:     t.CreatedAt(),
		ClosedAt:      t.ClosedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = ToTicketDTO(t)
	}
	return dtos
}
