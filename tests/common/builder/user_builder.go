//go:build unit || e2e

package builder

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID    uuid.UUID
	Email string
	Role  user.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Email: "client@example.com",
		Role:  user.RoleClient,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) AsProfessional() *UserBuilder {
	u.Role = user.RoleProfessional
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	return u
}

func (u *UserBuilder) BuildActor() user.Actor {
	return user.NewActor(u.ID, u.Role)
}
