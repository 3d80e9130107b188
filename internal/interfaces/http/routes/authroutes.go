package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "chamados/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	api.POST("/login", config.AuthHandler.Login)
}
