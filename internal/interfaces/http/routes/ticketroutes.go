package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "chamados/internal/interfaces/http/handlers/ticket"
	"chamados/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		tickets.POST("",
			authorization.RequireRoles(authorization.RoleUser),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			authorization.RequireRoles(authorization.RoleTech),
			config.TicketHandler.ListAllTickets)

		tickets.PATCH("/:id/complete",
			authorization.RequireRoles(authorization.RoleUser, authorization.RoleTech),
			config.TicketHandler.CompleteTicket)
		tickets.PATCH("/:id/help",
			authorization.RequireRoles(authorization.RoleUser),
			config.TicketHandler.RequestOnSiteHelp)

		tickets.GET("/:id",
			authorization.RequireRoles(authorization.RoleUser, authorization.RoleTech),
			config.TicketHandler.GetTicket)
	}

	// The user-scoped listing lives under its own prefix so the
	// technician listing and the personal listing stay distinct routes.
	api.GET("/user/tickets",
		authorization.RequireRoles(authorization.RoleUser),
		config.TicketHandler.ListOwnTickets)
}
