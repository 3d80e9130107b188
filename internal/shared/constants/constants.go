// Package constants holds cross-layer context keys.
package constants

const (
	// ContextKeyActor is the gin context key under which the identity
	// middleware stores the resolved authorization.Actor.
	ContextKeyActor = "actor"
)
