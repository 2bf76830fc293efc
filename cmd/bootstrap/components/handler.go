package components

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/api"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPostingHandler,
		api.NewTransactionHandler,
		api.NewPaymentHandler,
		api.NewWithdrawalHandler,
		api.NewPromoHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Postings     *api.PostingHandler
	Transactions *api.TransactionHandler
	Payments     *api.PaymentHandler
	Withdrawals  *api.WithdrawalHandler
	Promos       *api.PromoHandler
	Reviews      *api.ReviewHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Postings:     p.Postings,
		Transactions: p.Transactions,
		Payments:     p.Payments,
		Withdrawals:  p.Withdrawals,
		Promos:       p.Promos,
		Reviews:      p.Reviews,
	}
}
