//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/httperr"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid amount", errs.Wrapf(errs.ErrInvalidAmount, "amount %d", -1), http.StatusBadRequest, "INVALID_AMOUNT"},
		{"validation", errs.Wrap(promo.ErrInvalidDiscountPercent, "create"), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"not found", errs.Wrap(errs.ErrNotFound, "offer"), http.StatusNotFound, "NOT_FOUND"},
		{"repository not found", infra.WrapRepoErr("missing", nil, infra.KindNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"terminal", errs.Wrap(errs.ErrTerminalState, "complete"), http.StatusConflict, "TERMINAL_STATE"},
		{"stale row", infra.WrapRepoErr("changed", nil, infra.KindStaleState), http.StatusConflict, "INVALID_STATE"},
		{"duplicate", infra.WrapRepoErr("dup", nil, infra.KindDuplicateKey), http.StatusConflict, "CONFLICT"},
		{"idempotency key reused", errs.Wrap(errs.ErrIdempotencyKeyReused, "book"), http.StatusConflict, "IDEMPOTENCY_KEY_REUSED"},
		{"promo expired", errs.ErrExpired, http.StatusUnprocessableEntity, "PROMO_EXPIRED"},
		{"usage exceeded", errs.ErrUsageExceeded, http.StatusUnprocessableEntity, "PROMO_USAGE_EXCEEDED"},
		{"insufficient balance", errs.Wrap(errs.ErrInsufficientBalance, "withdraw"), http.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE"},
		{"db failure", infra.WrapRepoErr("boom", errors.New("conn reset")), http.StatusInternalServerError, "INTERNAL"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := httperr.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
