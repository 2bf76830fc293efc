//go:build unit

package api_test

import (
	"net/http"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// stubAuth authenticates every request carrying an Authorization header as actor.
func stubAuth(actor *user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized", "code": "UNAUTHENTICATED"}})
			return
		}
		middleware.SetActor(c, *actor)
		c.Next()
	}
}
