//go:build unit

package money_test

import (
	"testing"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := money.New(0)
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	_, err = money.New(-1)
	require.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestSub(t *testing.T) {
	m, err := money.Money(300).Sub(50)
	require.NoError(t, err)
	assert.Equal(t, money.Money(250), m)

	_, err = money.Money(50).Sub(51)
	require.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestApplyPercentage(t *testing.T) {
	cases := []struct {
		name   string
		amount money.Money
		pct    string
		want   money.Money
		errIs  error
	}{
		{name: "whole result", amount: 300, pct: "5", want: 15},
		{name: "half rounds up", amount: 10, pct: "5", want: 1},
		{name: "below half rounds down", amount: 9, pct: "5", want: 0},
		{name: "fractional percentage", amount: 1000, pct: "12.5", want: 125},
		{name: "fractional half rounds up", amount: 333, pct: "50", want: 167},
		{name: "zero amount", amount: 0, pct: "10", want: 0},
		{name: "zero percentage", amount: 999, pct: "0", want: 0},
		{name: "negative amount", amount: -1, pct: "10", errIs: errs.ErrInvalidAmount},
		{name: "negative percentage", amount: 100, pct: "-1", errIs: errs.ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.ApplyPercentage(tc.amount, decimal.RequireFromString(tc.pct))
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlatformFee(t *testing.T) {
	t.Run("fee on escrow", func(t *testing.T) {
		fee, err := money.PlatformFee(300, decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, money.Money(15), fee)
	})

	t.Run("full rate equals amount", func(t *testing.T) {
		fee, err := money.PlatformFee(301, decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.Equal(t, money.Money(301), fee)
	})

	t.Run("rate above 100 rejected", func(t *testing.T) {
		_, err := money.PlatformFee(100, decimal.NewFromInt(101))
		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestSplit(t *testing.T) {
	for _, amount := range []money.Money{0, 1, 19, 285, 300, 12345} {
		payout, fee, err := money.Split(amount, decimal.RequireFromString("5"))
		require.NoError(t, err)
		assert.Equal(t, amount, payout+fee, "payout + fee must equal amount")
		assert.LessOrEqual(t, fee, amount)
	}

	payout, fee, err := money.Split(300, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, money.Money(285), payout)
	assert.Equal(t, money.Money(15), fee)
}
