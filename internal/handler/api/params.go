package api

import (
	"net/http"
	"strconv"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/httperr"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/middleware"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidID             = errs.New("invalid id")
	errInvalidIdempotencyKey = errs.New("invalid idempotency key")
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

// idempotencyKey reads the optional Idempotency-Key header. Absent means
// uuid.Nil; anything but a UUID is rejected.
func idempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(headerIdempotencyKey)
	if raw == "" {
		return uuid.Nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidIdempotencyKey, err.Error()), "Invalid Idempotency-Key header", nil)
		return uuid.Nil, false
	}
	return key, true
}

func markReplayed(c *gin.Context, replayed bool) {
	if replayed {
		c.Header(headerReplayed, "true")
	}
}

func requireActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrForbidden, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidID, err.Error()), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func listResponse(key string, items any, next *queries.Cursor) gin.H {
	resp := gin.H{key: items}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	return resp
}
