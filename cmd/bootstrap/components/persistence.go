package components

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra/readstore"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra/uow"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

// Read stores query the pool directly; commands go through the unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		fx.Annotate(
			readstore.NewPostingReadStore,
			fx.As(new(queries.PostingReadStore)),
		),
		fx.Annotate(
			readstore.NewBalanceReadStore,
			fx.As(new(queries.BalanceReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) shared.DBTX {
	return pool
}
