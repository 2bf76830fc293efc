//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
	queriesmock "github.com/juliocnc19/mvp-tigrito-web-sub000/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBalanceQueries_GetBalance(t *testing.T) {
	ctx := context.Background()
	proID := uuid.New()

	t.Run("success: owner sees balance and movements", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBalanceReadStore(ctrl)
		movements := []*queries.MovementView{{ID: uuid.New(), Kind: "PAYOUT", AmountCents: 285}}
		store.EXPECT().Balance(ctx, proID).Return(int64(285), nil)
		store.EXPECT().RecentMovements(ctx, proID, int32(20)).Return(movements, nil)

		view, err := queries.NewBalanceQueries(store).GetBalance(ctx, proID, user.Actor{ID: proID, Role: user.RoleProfessional})

		require.NoError(t, err)
		assert.Equal(t, &queries.BalanceView{UserID: proID, BalanceCents: 285, Movements: movements}, view)
	})

	t.Run("success: no movements renders an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBalanceReadStore(ctrl)
		store.EXPECT().Balance(ctx, proID).Return(int64(0), nil)
		store.EXPECT().RecentMovements(ctx, proID, gomock.Any()).Return(nil, nil)

		view, err := queries.NewBalanceQueries(store).GetBalance(ctx, proID, user.Actor{ID: uuid.New(), Role: user.RoleAdmin})

		require.NoError(t, err)
		assert.NotNil(t, view.Movements)
		assert.Empty(t, view.Movements)
	})

	t.Run("error: another user's balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBalanceReadStore(ctrl)

		_, err := queries.NewBalanceQueries(store).GetBalance(ctx, proID, user.Actor{ID: uuid.New(), Role: user.RoleProfessional})

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestBalanceQueries_ListWithdrawals(t *testing.T) {
	ctx := context.Background()
	proID := uuid.New()

	testCases := []struct {
		name        string
		userID      uuid.UUID
		actor       user.Actor
		expectCall  bool
		expectedErr error
	}{
		{name: "success: own withdrawals", userID: proID, actor: user.Actor{ID: proID, Role: user.RoleProfessional}, expectCall: true},
		{name: "success: admin queue across users", userID: uuid.Nil, actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, expectCall: true},
		{name: "error: professional asks for the admin queue", userID: uuid.Nil, actor: user.Actor{ID: proID, Role: user.RoleProfessional}, expectedErr: errs.ErrForbidden},
		{name: "error: another professional", userID: proID, actor: user.Actor{ID: uuid.New(), Role: user.RoleProfessional}, expectedErr: errs.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBalanceReadStore(ctrl)
			if tc.expectCall {
				store.EXPECT().ListWithdrawals(ctx, tc.userID, "PENDING", (*queries.Keyset)(nil), int32(11)).
					Return([]*queries.WithdrawalView{{ID: uuid.New(), Status: "PENDING"}}, nil)
			}

			page, next, err := queries.NewBalanceQueries(store).ListWithdrawals(ctx, tc.userID, tc.actor, "PENDING", nil, 10)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, page, 1)
			assert.Nil(t, next)
		})
	}
}
