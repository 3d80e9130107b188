package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"chamados/internal/infrastructure/auth"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/constants"
	"chamados/internal/shared/logger"
)

// Identity resolves the calling actor from a Bearer token. It never
// aborts the request: a missing, malformed or expired token resolves to
// the anonymous actor, and every role check downstream rejects that
// with the uniform denial. Role and identity always come from the
// verified token, never from request headers or payloads.
type Identity struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewIdentity(jwtService *auth.JWTService, logger logger.Interface) *Identity {
	return &Identity{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *Identity) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Debugw("token verification failed", "error", err)
			c.Next()
			return
		}

		actor := authorization.Actor{
			ID:   claims.UserID,
			Role: claims.Role,
		}
		c.Set(constants.ContextKeyActor, actor)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
