// Package authorization defines the fixed role set and the role and
// ownership checks applied to every ticket-scoped operation.
package authorization

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleTech  UserRole = "tech"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsUser() bool {
	return r == RoleUser
}

func (r UserRole) IsTech() bool {
	return r == RoleTech
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleTech || r == RoleAdmin
}

// ParseUserRole maps a raw role string to a UserRole. Unknown values
// yield the empty role, which every role check rejects.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return ""
}

// Actor is the resolved identity of the caller: who they are and which
// of the three fixed roles they act under. The zero value is the
// anonymous actor.
type Actor struct {
	ID   uint
	Role UserRole
}

// IsAnonymous reports whether the actor carries no usable identity.
func (a Actor) IsAnonymous() bool {
	return a.ID == 0 || !a.Role.IsValid()
}

// HasAnyRole reports whether the actor holds one of the given roles.
// Anonymous actors never match.
func (a Actor) HasAnyRole(roles ...UserRole) bool {
	if a.IsAnonymous() {
		return false
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// CanAccessTicket applies the ownership rule for ticket-scoped
// operations: a technician is authorized for any ticket, a user only
// for tickets they own. Admins hold no ticket privileges.
func CanAccessTicket(actor Actor, ownerID uint) bool {
	if actor.Role.IsTech() {
		return true
	}
	if actor.Role.IsUser() {
		return actor.ID == ownerID
	}
	return false
}
