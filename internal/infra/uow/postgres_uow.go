package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra/repository"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/metrics"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultMaxRetries = 3
	defaultBackoff    = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		maxRetries: defaultMaxRetries,
		base:       defaultBackoff,
	}
}

// Within runs fn serializable: balance checks, escrow funding and payouts all
// read the rows they are about to change. Serialization failures and
// deadlocks rerun fn from scratch, so fn must not keep state across calls.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.Serializable}

	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, opts, fn)
		if !isRetryableError(err) {
			return err
		}
		if attempt == u.maxRetries {
			break
		}

		wait := calculateBackoff(attempt, u.base)
		metrics.TxRetriesTotal.Inc()
		slog.Warn("retrying serializable transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	slog.Error("transaction failed after max retries", "attempts", u.maxRetries+1, "error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// attempt owns exactly one pgx transaction so nothing leaks between retries.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, newPgTx(pgxTx)); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// WithinReadOnly gives queries a consistent snapshot across tables.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db shared.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

// rollback after a successful commit is a no-op reported as ErrTxClosed.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

// calculateBackoff doubles base per attempt and adds up to 20% jitter.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int64N(j))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx shared.DBTX

	postings     shared.PostingRepository
	offers       shared.OfferRepository
	transactions shared.TransactionRepository
	promoCodes   shared.PromoCodeRepository
	payments     shared.PaymentRepository
	withdrawals  shared.WithdrawalRepository
	balances     shared.BalanceRepository
	services     shared.ProServiceRepository
	reviews      shared.ReviewRepository
	outbox       shared.OutboxRepository
	idempotency  shared.IdempotencyRepository
}

func newPgTx(db shared.DBTX) *pgTx {
	return &pgTx{dbtx: db}
}

func (t *pgTx) DB() shared.DBTX {
	return t.dbtx
}

func (t *pgTx) Postings() shared.PostingRepository {
	if t.postings == nil {
		t.postings = repository.NewPostingRepository(t.dbtx)
	}
	return t.postings
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offers == nil {
		t.offers = repository.NewOfferRepository(t.dbtx)
	}
	return t.offers
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactions == nil {
		t.transactions = repository.NewTransactionRepository(t.dbtx)
	}
	return t.transactions
}

func (t *pgTx) PromoCodes() shared.PromoCodeRepository {
	if t.promoCodes == nil {
		t.promoCodes = repository.NewPromoCodeRepository(t.dbtx)
	}
	return t.promoCodes
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.payments == nil {
		t.payments = repository.NewPaymentRepository(t.dbtx)
	}
	return t.payments
}

func (t *pgTx) Withdrawals() shared.WithdrawalRepository {
	if t.withdrawals == nil {
		t.withdrawals = repository.NewWithdrawalRepository(t.dbtx)
	}
	return t.withdrawals
}

func (t *pgTx) Balances() shared.BalanceRepository {
	if t.balances == nil {
		t.balances = repository.NewBalanceRepository(t.dbtx)
	}
	return t.balances
}

func (t *pgTx) Services() shared.ProServiceRepository {
	if t.services == nil {
		t.services = repository.NewProServiceRepository(t.dbtx)
	}
	return t.services
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviews == nil {
		t.reviews = repository.NewReviewRepository(t.dbtx)
	}
	return t.reviews
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outbox == nil {
		t.outbox = repository.NewOutboxRepository(t.dbtx)
	}
	return t.outbox
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotency == nil {
		t.idempotency = repository.NewIdempotencyRepository(t.dbtx)
	}
	return t.idempotency
}
