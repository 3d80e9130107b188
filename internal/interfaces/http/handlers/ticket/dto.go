package ticket

import (
	"chamados/internal/application/ticket/usecases"
	"chamados/internal/shared/authorization"
)

type CreateTicketRequest struct {
	Name        string `json:"name"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

func (r CreateTicketRequest) ToCommand(actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:         actor,
		SubmitterName: r.Name,
		Severity:      r.Severity,
		Description:   r.Description,
	}
}
