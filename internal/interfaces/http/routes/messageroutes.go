package routes

import (
	"github.com/gin-gonic/gin"

	messagehandlers "chamados/internal/interfaces/http/handlers/message"
	"chamados/internal/shared/authorization"
)

type MessageRouteConfig struct {
	MessageHandler *messagehandlers.MessageHandler
}

func SetupMessageRoutes(api *gin.RouterGroup, config *MessageRouteConfig) {
	chat := authorization.RequireRoles(authorization.RoleUser, authorization.RoleTech)

	tickets := api.Group("/tickets")
	{
		tickets.GET("/:id/messages", chat, config.MessageHandler.ListMessages)
		tickets.POST("/:id/messages", chat, config.MessageHandler.AppendMessage)
		tickets.PATCH("/:id/read", chat, config.MessageHandler.MarkRead)
		tickets.GET("/:id/unread", chat, config.MessageHandler.GetUnread)
	}
}
