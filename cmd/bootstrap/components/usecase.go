package components

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.Settings {
		return commands.Settings{FeeRatePct: cfg.Settlement.PlatformFeeRatePct}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPostingUseCase,
		commands.NewTransactionUseCase,
		commands.NewPaymentUseCase,
		commands.NewWithdrawalUseCase,
		commands.NewPromoUseCase,
		commands.NewReviewUseCase,
		commands.NewPaymentWorker,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTransactionQueries,
		queries.NewPostingQueries,
		queries.NewBalanceQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
