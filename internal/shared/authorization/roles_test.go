package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleTech, ParseUserRole("tech"))
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, UserRole(""), ParseUserRole("manager"))
	assert.Equal(t, UserRole(""), ParseUserRole(""))
}

func TestActor_IsAnonymous(t *testing.T) {
	assert.True(t, Actor{}.IsAnonymous())
	assert.True(t, Actor{ID: 1}.IsAnonymous())
	assert.True(t, Actor{Role: RoleUser}.IsAnonymous())
	assert.False(t, Actor{ID: 1, Role: RoleUser}.IsAnonymous())
}

func TestActor_HasAnyRole(t *testing.T) {
	tech := Actor{ID: 2, Role: RoleTech}

	assert.True(t, tech.HasAnyRole(RoleTech))
	assert.True(t, tech.HasAnyRole(RoleUser, RoleTech))
	assert.False(t, tech.HasAnyRole(RoleUser))
	assert.False(t, Actor{}.HasAnyRole(RoleUser, RoleTech, RoleAdmin))
}

func TestCanAccessTicket(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		ownerID uint
		allowed bool
	}{
		{name: "tech accesses any ticket", actor: Actor{ID: 2, Role: RoleTech}, ownerID: 99, allowed: true},
		{name: "user accesses own ticket", actor: Actor{ID: 5, Role: RoleUser}, ownerID: 5, allowed: true},
		{name: "user denied on foreign ticket", actor: Actor{ID: 5, Role: RoleUser}, ownerID: 6, allowed: false},
		{name: "admin holds no ticket access", actor: Actor{ID: 1, Role: RoleAdmin}, ownerID: 1, allowed: false},
		{name: "anonymous denied", actor: Actor{}, ownerID: 0, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanAccessTicket(tt.actor, tt.ownerID))
		})
	}
}
