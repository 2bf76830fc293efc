//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
	queriesmock "github.com/juliocnc19/mvp-tigrito-web-sub000/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPostingQueries_GetPosting(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	proA := uuid.New()
	proB := uuid.New()

	testCases := []struct {
		name       string
		actor      user.Actor
		wantOffers []uuid.UUID
	}{
		{name: "owner sees every offer", actor: user.Actor{ID: clientID, Role: user.RoleClient}, wantOffers: []uuid.UUID{proA, proB}},
		{name: "admin sees every offer", actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, wantOffers: []uuid.UUID{proA, proB}},
		{name: "professional sees only their offer", actor: user.Actor{ID: proB, Role: user.RoleProfessional}, wantOffers: []uuid.UUID{proB}},
		{name: "other professional sees none", actor: user.Actor{ID: uuid.New(), Role: user.RoleProfessional}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockPostingReadStore(ctrl)
			id := uuid.New()
			store.EXPECT().FindByID(ctx, id).Return(&queries.PostingView{ID: id, ClientID: clientID, Status: "OPEN"}, nil)
			store.EXPECT().Offers(ctx, id).Return([]*queries.OfferView{
				{ID: uuid.New(), PostingID: id, ProfessionalID: proA, PriceCents: 350},
				{ID: uuid.New(), PostingID: id, ProfessionalID: proB, PriceCents: 400},
			}, nil)

			view, err := queries.NewPostingQueries(store).GetPosting(ctx, id, tc.actor)

			require.NoError(t, err)
			var got []uuid.UUID
			for _, o := range view.Offers {
				got = append(got, o.ProfessionalID)
			}
			assert.Equal(t, tc.wantOffers, got)
		})
	}
}

func TestPostingQueries_ListOpenPostings(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPostingReadStore(ctrl)
	store.EXPECT().ListOpen(ctx, "plomeria", (*queries.Keyset)(nil), int32(queries.MaxListLimit+1)).
		Return([]*queries.PostingView{{ID: uuid.New()}}, nil)

	page, next, err := queries.NewPostingQueries(store).ListOpenPostings(ctx, "plomeria", nil, 1000)

	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Nil(t, next)
}
