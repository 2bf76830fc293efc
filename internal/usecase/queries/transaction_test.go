//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
	queriesmock "github.com/juliocnc19/mvp-tigrito-web-sub000/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestTransactionQueries_GetTransaction(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	proID := uuid.New()

	testCases := []struct {
		name        string
		actor       user.Actor
		setupMock   func(*queriesmock.MockTransactionReadStore, uuid.UUID)
		expectedErr error
	}{
		{
			name:  "success: client sees history",
			actor: user.Actor{ID: clientID, Role: user.RoleClient},
			setupMock: func(m *queriesmock.MockTransactionReadStore, id uuid.UUID) {
				m.EXPECT().FindByID(ctx, id).Return(&queries.TransactionView{ID: id, ClientID: clientID, ProfessionalID: proID}, nil)
				m.EXPECT().History(ctx, id).Return([]queries.StatusChangeView{{FromStatus: "PENDING_SOLICITUD", ToStatus: "SCHEDULED"}}, nil)
			},
		},
		{
			name:  "success: admin sees any transaction",
			actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin},
			setupMock: func(m *queriesmock.MockTransactionReadStore, id uuid.UUID) {
				m.EXPECT().FindByID(ctx, id).Return(&queries.TransactionView{ID: id, ClientID: clientID, ProfessionalID: proID}, nil)
				m.EXPECT().History(ctx, id).Return(nil, nil)
			},
		},
		{
			name:  "error: outsider",
			actor: user.Actor{ID: uuid.New(), Role: user.RoleProfessional},
			setupMock: func(m *queriesmock.MockTransactionReadStore, id uuid.UUID) {
				m.EXPECT().FindByID(ctx, id).Return(&queries.TransactionView{ID: id, ClientID: clientID, ProfessionalID: proID}, nil)
			},
			expectedErr: errs.ErrForbidden,
		},
		{
			name:  "error: not found",
			actor: user.Actor{ID: clientID, Role: user.RoleClient},
			setupMock: func(m *queriesmock.MockTransactionReadStore, id uuid.UUID) {
				m.EXPECT().FindByID(ctx, id).Return(nil, errs.ErrNotFound)
			},
			expectedErr: errs.ErrNotFound,
		},
		{
			name:  "error: history lookup fails",
			actor: user.Actor{ID: proID, Role: user.RoleProfessional},
			setupMock: func(m *queriesmock.MockTransactionReadStore, id uuid.UUID) {
				m.EXPECT().FindByID(ctx, id).Return(&queries.TransactionView{ID: id, ClientID: clientID, ProfessionalID: proID}, nil)
				m.EXPECT().History(ctx, id).Return(nil, errDBConnectionLost)
			},
			expectedErr: errDBConnectionLost,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockTransactionReadStore(ctrl)
			id := uuid.New()
			tc.setupMock(store, id)

			view, err := queries.NewTransactionQueries(store).GetTransaction(ctx, id, tc.actor)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
		})
	}
}

func TestTransactionQueries_ListTransactions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	rows := func(n int) []*queries.TransactionView {
		out := make([]*queries.TransactionView, n)
		for i := range out {
			out[i] = &queries.TransactionView{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
		}
		return out
	}

	t.Run("success: extra row becomes the next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTransactionReadStore(ctrl)
		all := rows(3)
		store.EXPECT().ListByParty(ctx, userID, "COMPLETED", (*queries.Keyset)(nil), int32(3)).Return(all, nil)

		page, next, err := queries.NewTransactionQueries(store).ListTransactions(ctx, userID,
			user.Actor{ID: userID, Role: user.RoleProfessional}, queries.TransactionFilters{Status: "COMPLETED"}, nil, 2)

		require.NoError(t, err)
		assert.Equal(t, all[:2], page)
		require.NotNil(t, next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, all[1].CreatedAt.Equal(at))
		assert.Equal(t, all[1].ID, id)
	})

	t.Run("success: cursor is passed to the store as a keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTransactionReadStore(ctrl)
		afterID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(base, afterID)}
		store.EXPECT().ListByParty(ctx, userID, "", gomock.Any(), int32(21)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, after *queries.Keyset, _ int32) ([]*queries.TransactionView, error) {
				require.NotNil(t, after)
				assert.Equal(t, afterID, after.ID)
				assert.True(t, base.Equal(after.CreatedAt))
				return rows(1), nil
			})

		page, next, err := queries.NewTransactionQueries(store).ListTransactions(ctx, userID,
			user.Actor{ID: userID, Role: user.RoleClient}, queries.TransactionFilters{}, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Nil(t, next)
	})

	t.Run("error: other user's transactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTransactionReadStore(ctrl)

		_, _, err := queries.NewTransactionQueries(store).ListTransactions(ctx, userID,
			user.Actor{ID: uuid.New(), Role: user.RoleClient}, queries.TransactionFilters{}, nil, 10)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTransactionReadStore(ctrl)

		_, _, err := queries.NewTransactionQueries(store).ListTransactions(ctx, userID,
			user.Actor{ID: userID, Role: user.RoleClient}, queries.TransactionFilters{}, &queries.Cursor{After: "garbage"}, 10)

		assert.True(t, errs.Is(err, queries.ErrInvalidCursor), err)
	})
}
