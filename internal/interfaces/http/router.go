package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "chamados/internal/application/auth/usecases"
	messageusecases "chamados/internal/application/message/usecases"
	ticketusecases "chamados/internal/application/ticket/usecases"
	"chamados/internal/infrastructure/auth"
	"chamados/internal/infrastructure/config"
	"chamados/internal/infrastructure/email"
	"chamados/internal/infrastructure/repository"
	authhandlers "chamados/internal/interfaces/http/handlers/auth"
	messagehandlers "chamados/internal/interfaces/http/handlers/message"
	tickethandlers "chamados/internal/interfaces/http/handlers/ticket"
	"chamados/internal/interfaces/http/middleware"
	"chamados/internal/interfaces/http/routes"
	shareddb "chamados/internal/shared/db"
	"chamados/internal/shared/logger"
	"chamados/internal/shared/services/markdown"
	"chamados/internal/shared/utils"
)

// Router wires handlers, middleware and routes into a gin engine.
type Router struct {
	engine         *gin.Engine
	identity       *middleware.Identity
	authHandler    *authhandlers.AuthHandler
	ticketHandler  *tickethandlers.TicketHandler
	messageHandler *messagehandlers.MessageHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	txMgr := shareddb.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpHours)
	markdownSvc := markdown.NewService()

	var notifier ticketusecases.OnSiteHelpNotifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPEmailService(email.SMTPConfig{
			Host:         cfg.Email.SMTPHost,
			Port:         cfg.Email.SMTPPort,
			Username:     cfg.Email.SMTPUser,
			Password:     cfg.Email.SMTPPassword,
			FromAddress:  cfg.Email.FromAddress,
			FromName:     cfg.Email.FromName,
			SupportInbox: cfg.Email.SupportInbox,
		})
	}

	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtSvc, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	completeTicketUC := ticketusecases.NewCompleteTicketUseCase(ticketRepo, txMgr, log)
	requestHelpUC := ticketusecases.NewRequestOnSiteHelpUseCase(ticketRepo, notifier, txMgr, log)

	appendMessageUC := messageusecases.NewAppendMessageUseCase(messageRepo, ticketRepo, log)
	listMessagesUC := messageusecases.NewListMessagesUseCase(messageRepo, ticketRepo, markdownSvc, log)
	markReadUC := messageusecases.NewMarkReadUseCase(messageRepo, ticketRepo, log)
	computeUnreadUC := messageusecases.NewComputeUnreadUseCase(messageRepo, ticketRepo, log)

	return &Router{
		engine:   engine,
		identity: middleware.NewIdentity(jwtSvc, log),
		authHandler: authhandlers.NewAuthHandler(
			loginUC,
		),
		ticketHandler: tickethandlers.NewTicketHandler(
			createTicketUC,
			getTicketUC,
			listTicketsUC,
			completeTicketUC,
			requestHelpUC,
		),
		messageHandler: messagehandlers.NewMessageHandler(
			appendMessageUC,
			listMessagesUC,
			markReadUC,
			computeUnreadUC,
		),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CustomLogger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(r.identity.Resolve())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c)
	})

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
	})
	routes.SetupMessageRoutes(api, &routes.MessageRouteConfig{
		MessageHandler: r.messageHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
