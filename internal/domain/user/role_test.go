//go:build unit

package user_test

import (
	"testing"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"client", "professional", "admin"} {
		t.Run(valid, func(t *testing.T) {
			role, err := user.NewRole(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, role.String())
		})
	}

	for _, invalid := range []string{"", "viewer", "system", "ADMIN"} {
		t.Run("invalid "+invalid, func(t *testing.T) {
			_, err := user.NewRole(invalid)
			require.ErrorIs(t, err, user.ErrInvalidRole)
		})
	}
}

func TestActor(t *testing.T) {
	admin := user.NewActor(uuid.New(), user.RoleAdmin)
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsPrivileged())

	client := user.NewActor(uuid.New(), user.RoleClient)
	assert.False(t, client.IsPrivileged())

	sys := user.SystemActor()
	assert.True(t, sys.IsSystem())
	assert.True(t, sys.IsPrivileged())
	assert.Equal(t, uuid.Nil, sys.ID)
}
