package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/httperr"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxActorKey = "actor"

var (
	errMissingToken = errors.New("missing bearer token")
	errRoleDenied   = errors.New("role not allowed on route")
	errNoActor      = errors.New("RequireRole mounted without RequireAuth")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			httperr.AbortWithCode(c, http.StatusUnauthorized, "UNAUTHENTICATED", errMissingToken, "Access token required")
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("rejected bearer token", "request_id", GetRequestID(c), "error", err.Error())
			httperr.AbortWithCode(c, http.StatusUnauthorized, "UNAUTHENTICATED", err, "Invalid or expired token")
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth. Admins are not implicitly allowed.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithCode(c, http.StatusInternalServerError, "INTERNAL", errNoActor, "Internal server error")
			return
		}
		if !slices.Contains(roles, actor.Role) {
			httperr.AbortWithCode(c, http.StatusForbidden, "FORBIDDEN", errRoleDenied, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// SetActor stores the authenticated actor. Handler tests use it to stub auth.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}
	actor, ok := v.(user.Actor)
	return actor, ok
}
