package user

import "github.com/google/uuid"

// Actor is whoever triggers a command: an authenticated user or the system itself.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func SystemActor() Actor {
	return Actor{ID: uuid.Nil, Role: RoleSystem}
}

func (a Actor) IsAdmin() bool  { return a.Role == RoleAdmin }
func (a Actor) IsSystem() bool { return a.Role == RoleSystem }

// IsPrivileged reports whether the actor may bypass party-ownership checks.
func (a Actor) IsPrivileged() bool {
	return a.IsAdmin() || a.IsSystem()
}
