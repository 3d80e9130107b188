package authorization

import (
	"github.com/gin-gonic/gin"

	"chamados/internal/shared/constants"
	"chamados/internal/shared/utils"
)

// ActorFromContext returns the actor resolved by the identity
// middleware. Requests without a verified identity yield the anonymous
// actor.
func ActorFromContext(c *gin.Context) Actor {
	v, ok := c.Get(constants.ContextKeyActor)
	if !ok {
		return Actor{}
	}
	actor, ok := v.(Actor)
	if !ok {
		return Actor{}
	}
	return actor
}

// RequireRoles denies the request unless the actor holds one of the
// given roles. Missing identity, an unknown role and an insufficient
// role all produce the same uniform denial.
func RequireRoles(roles ...UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if !actor.HasAnyRole(roles...) {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
