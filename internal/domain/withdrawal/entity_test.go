//go:build unit

package withdrawal_test

import (
	"testing"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/withdrawal"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		amount  money.Money
		balance money.Money
		errIs   error
	}{
		{name: "within balance", amount: 800, balance: 800},
		{name: "above balance", amount: 1000, balance: 800, errIs: errs.ErrInsufficientBalance},
		{name: "zero amount", amount: 0, balance: 800, errIs: errs.ErrInvalidAmount},
		{name: "negative amount", amount: -5, balance: 800, errIs: errs.ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := withdrawal.New(uuid.New(), uuid.New(), tc.amount, tc.balance, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, withdrawal.StatusPending, w.Status())
		})
	}
}

func TestApprove(t *testing.T) {
	now := time.Now()

	t.Run("debits the locked balance", func(t *testing.T) {
		w, err := withdrawal.New(uuid.New(), uuid.New(), 300, 800, now)
		require.NoError(t, err)

		remaining, err := w.Approve(800, now)
		require.NoError(t, err)
		assert.Equal(t, money.Money(500), remaining)
		assert.Equal(t, withdrawal.StatusCompleted, w.Status())
		require.NotNil(t, w.ProcessedAt())
	})

	t.Run("balance dropped since request", func(t *testing.T) {
		w, err := withdrawal.New(uuid.New(), uuid.New(), 700, 800, now)
		require.NoError(t, err)

		_, err = w.Approve(600, now)
		require.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, withdrawal.StatusPending, w.Status())
	})

	t.Run("only once", func(t *testing.T) {
		w, err := withdrawal.New(uuid.New(), uuid.New(), 100, 800, now)
		require.NoError(t, err)
		_, err = w.Approve(800, now)
		require.NoError(t, err)

		_, err = w.Approve(700, now)
		require.ErrorIs(t, err, errs.ErrTerminalState)
	})
}

func TestReject(t *testing.T) {
	now := time.Now()
	w, err := withdrawal.New(uuid.New(), uuid.New(), 100, 800, now)
	require.NoError(t, err)

	require.ErrorIs(t, w.Reject("  ", now), errs.ErrInvalidState)
	require.NoError(t, w.Reject("account mismatch", now))
	assert.Equal(t, withdrawal.StatusFailed, w.Status())
	assert.Equal(t, "account mismatch", *w.RejectionReason())

	_, err = w.Approve(800, now)
	require.ErrorIs(t, err, errs.ErrTerminalState)
}
