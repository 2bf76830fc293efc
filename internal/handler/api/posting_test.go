//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/posting"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/api"
	reqdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/request"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/tests/common/builder"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/tests/common/httptest"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/tests/common/testutil"
	commandsmock "github.com/juliocnc19/mvp-tigrito-web-sub000/tests/mock/commands"
	queriesmock "github.com/juliocnc19/mvp-tigrito-web-sub000/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PostingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPostingCommands
	mockQueries  *queriesmock.MockPostingQueries
	handler      *api.PostingHandler
	actor        user.Actor
}

func (s *PostingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPostingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPostingQueries(s.mockCtrl)
	s.handler = api.NewPostingHandler(s.mockCommands, s.mockQueries)
	s.actor = builder.NewUserBuilder().BuildActor()

	auth := stubAuth(&s.actor)
	s.router.POST("/postings", auth, s.handler.Create)
	s.router.GET("/postings", auth, s.handler.ListOpen)
	s.router.GET("/postings/:id", auth, s.handler.Get)
	s.router.POST("/postings/:id/offers", auth, s.handler.SubmitOffer)
	s.router.POST("/offers/:id/accept", auth, s.handler.AcceptOffer)
	s.router.POST("/admin/postings/:id/close", auth, s.handler.ForceClose)
}

func (s *PostingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPostingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PostingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PostingHandlerTestSuite) TestCreate() {
	reqBody := builder.NewPostingBuilder().BuildCreateRequestDTO()
	postingID := uuid.New()

	s.Run("success: converts cents into money", func() {
		s.mockCommands.EXPECT().CreatePosting(gomock.Any(), gomock.Any(), s.actor).
			DoAndReturn(func(_ any, req commands.CreatePostingRequest, _ user.Actor) (uuid.UUID, error) {
				s.Equal(reqBody.Title, req.Title)
				s.Require().NotNil(req.PriceMin)
				s.Equal(*reqBody.PriceMinCents, req.PriceMin.Cents())
				return postingID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/postings", reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(postingID.String(), body["id"])
	})

	cases := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing title", mutate: testutil.Field("title", nil)},
		{name: "missing category", mutate: testutil.Field("category", nil)},
		{name: "title too long", mutate: testutil.Field("title", strings.Repeat("t", 201))},
		{name: "negative price floor", mutate: testutil.Field("price_min_cents", -1)},
	}
	for _, tc := range cases {
		s.Run("error: 400 "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/postings", requestMap, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}

	s.Run("error: 400 when the domain rejects the price box", func() {
		s.mockCommands.EXPECT().CreatePosting(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, posting.ErrInvalidPriceBox).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/postings", reqBody, "bearer-token")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

// ================================================================================
// TestSubmitOffer
// ================================================================================

func (s *PostingHandlerTestSuite) TestSubmitOffer() {
	postingID := uuid.New()
	url := "/postings/" + postingID.String() + "/offers"

	s.Run("success", func() {
		offerID := uuid.New()
		s.mockCommands.EXPECT().
			SubmitOffer(gomock.Any(), postingID, commands.SubmitOfferRequest{Price: money.Money(35000), Message: "can do"}, s.actor).
			Return(offerID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.SubmitOfferRequest{PriceCents: 35000, Message: "can do"}, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(offerID.String(), body["id"])
	})

	s.Run("error: 400 on zero price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"price_cents": 0}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when the posting is closed", func() {
		s.mockCommands.EXPECT().SubmitOffer(gomock.Any(), postingID, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Wrap(errs.ErrInvalidState, "posting is not open")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.SubmitOfferRequest{PriceCents: 100}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Submit offer failed")
	})
}

// ================================================================================
// TestAcceptOffer
// ================================================================================

func (s *PostingHandlerTestSuite) TestAcceptOffer() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String() + "/accept"

	s.Run("success: reports the settlement amounts", func() {
		txID, rejected := uuid.New(), uuid.New()
		s.mockCommands.EXPECT().
			AcceptOffer(gomock.Any(), offerID, commands.AcceptOfferRequest{PromoCode: "PLOMERIA50"}, s.actor).
			Return(&commands.AcceptOfferResult{
				TransactionID:  txID,
				OfferID:        offerID,
				RejectedOffers: []uuid.UUID{rejected},
				DiscountAmount: money.Money(50),
				EscrowAmount:   money.Money(250),
				PlatformFee:    money.Money(15),
				Status:         transaction.StatusPendingSolicitud,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.AcceptOfferRequest{PromoCode: "PLOMERIA50"}, "bearer-token")

		var body struct {
			TransactionID       string   `json:"transaction_id"`
			RejectedOfferIDs    []string `json:"rejected_offer_ids"`
			DiscountAmountCents int64    `json:"discount_amount_cents"`
			EscrowAmountCents   int64    `json:"escrow_amount_cents"`
			PlatformFeeCents    int64    `json:"platform_fee_cents"`
			Status              string   `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(txID.String(), body.TransactionID)
		s.Equal([]string{rejected.String()}, body.RejectedOfferIDs)
		s.EqualValues(50, body.DiscountAmountCents)
		s.EqualValues(250, body.EscrowAmountCents)
		s.EqualValues(15, body.PlatformFeeCents)
		s.Equal(string(transaction.StatusPendingSolicitud), body.Status)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().AcceptOffer(gomock.Any(), offerID, commands.AcceptOfferRequest{}, s.actor).
			Return(&commands.AcceptOfferResult{TransactionID: uuid.New(), OfferID: offerID, Status: transaction.StatusPendingSolicitud}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	promoFailures := []struct {
		name string
		err  error
		code string
	}{
		{name: "expired", err: errs.ErrExpired, code: "PROMO_EXPIRED"},
		{name: "usage exceeded", err: errs.ErrUsageExceeded, code: "PROMO_USAGE_EXCEEDED"},
		{name: "per-user limit", err: errs.ErrPerUserLimitExceeded, code: "PROMO_PER_USER_LIMIT_EXCEEDED"},
		{name: "category mismatch", err: errs.ErrCategoryMismatch, code: "PROMO_CATEGORY_MISMATCH"},
	}
	for _, tc := range promoFailures {
		s.Run("error: 422 promo "+tc.name, func() {
			s.mockCommands.EXPECT().AcceptOffer(gomock.Any(), offerID, gomock.Any(), gomock.Any()).
				Return(nil, errs.Wrap(tc.err, "validate promo")).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				reqdto.AcceptOfferRequest{PromoCode: "CODE"}, "bearer-token")

			httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, tc.code)
		})
	}

	s.Run("error: 409 when the offer was already decided", func() {
		s.mockCommands.EXPECT().AcceptOffer(gomock.Any(), offerID, gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrInvalidState, "offer is not pending")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Accept offer failed")
	})
}

// ================================================================================
// TestGet / TestListOpen
// ================================================================================

func (s *PostingHandlerTestSuite) TestGet() {
	postingID := uuid.New()

	s.Run("success: includes visible offers", func() {
		view := &queries.PostingView{
			ID:       postingID,
			ClientID: s.actor.ID,
			Title:    "Fix sink",
			Category: "PLOMERIA",
			Status:   string(posting.StatusOpen),
			Offers: []*queries.OfferView{
				{ID: uuid.New(), PostingID: postingID, ProfessionalID: uuid.New(), PriceCents: 35000, Status: string(posting.OfferPending)},
			},
		}
		s.mockQueries.EXPECT().GetPosting(gomock.Any(), postingID, s.actor).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/postings/"+postingID.String(), nil, "bearer-token")

		var body struct {
			ID     string `json:"id"`
			Offers []struct {
				PriceCents int64 `json:"price_cents"`
			} `json:"offers"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(postingID.String(), body.ID)
		s.Require().Len(body.Offers, 1)
		s.EqualValues(35000, body.Offers[0].PriceCents)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetPosting(gomock.Any(), postingID, gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrNotFound, "posting")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/postings/"+postingID.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *PostingHandlerTestSuite) TestListOpen() {
	s.mockQueries.EXPECT().ListOpenPostings(gomock.Any(), "PLOMERIA", (*queries.Cursor)(nil), 20).
		Return([]*queries.PostingView{}, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/postings?category=PLOMERIA", nil, "bearer-token")

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Contains(body, "postings")
	s.NotContains(body, "next_cursor")
}

// ================================================================================
// TestForceClose
// ================================================================================

func (s *PostingHandlerTestSuite) TestForceClose() {
	postingID := uuid.New()
	url := "/admin/postings/" + postingID.String() + "/close"

	s.Run("success", func() {
		s.mockCommands.EXPECT().ForceClosePosting(gomock.Any(), postingID, s.actor).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for non-privileged callers", func() {
		s.mockCommands.EXPECT().ForceClosePosting(gomock.Any(), postingID, gomock.Any()).
			Return(errs.Wrap(errs.ErrForbidden, "force close")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
