package shared

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/posting"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/review"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/withdrawal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UnitOfWork interface {
	// Within runs fn in one serializable transaction, retrying on
	// serialization failures and deadlocks. fn may run more than once.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db DBTX) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Postings() PostingRepository
	Offers() OfferRepository
	Transactions() TransactionRepository
	PromoCodes() PromoCodeRepository
	Payments() PaymentRepository
	Withdrawals() WithdrawalRepository
	Balances() BalanceRepository
	Services() ProServiceRepository
	Reviews() ReviewRepository
	Outbox() OutboxRepository
	Idempotency() IdempotencyRepository
	DB() DBTX
}

type PostingRepository interface {
	Create(ctx context.Context, p *posting.Posting) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*posting.Posting, error)
	// UpdateStatus fails with InvalidState when the row is no longer in from.
	UpdateStatus(ctx context.Context, p *posting.Posting, from posting.Status) error
	ListExpiredOpen(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type OfferRepository interface {
	Create(ctx context.Context, o *posting.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*posting.Offer, error)
	ListByPostingForUpdate(ctx context.Context, postingID uuid.UUID) ([]*posting.Offer, error)
	UpdateStatus(ctx context.Context, o *posting.Offer, from posting.OfferStatus) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *transaction.Transaction, category string) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	// ApplyTransition persists t after tr, guarded by status = tr.From, and
	// appends the history row.
	ApplyTransition(ctx context.Context, t *transaction.Transaction, tr transaction.Transition) error
	SetFunding(ctx context.Context, t *transaction.Transaction) error
}

type PromoCodeRepository interface {
	Create(ctx context.Context, p *promo.PromoCode) error
	FindByCode(ctx context.Context, code string) (*promo.PromoCode, error)
	FindByCodeForUpdate(ctx context.Context, code string) (*promo.PromoCode, error)
	CountUsages(ctx context.Context, codeID, userID uuid.UUID) (int, error)
	// RecordUsage inserts the usage row and bumps uses_count in one step.
	// It fails with UsageExceeded if the global limit was reached meanwhile.
	RecordUsage(ctx context.Context, u promo.Usage) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	FindCompletedByTransaction(ctx context.Context, transactionID uuid.UUID) (*payment.Payment, error)
	Update(ctx context.Context, p *payment.Payment, from payment.Status) error
}

type WithdrawalRepository interface {
	Create(ctx context.Context, w *withdrawal.Withdrawal) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*withdrawal.Withdrawal, error)
	Update(ctx context.Context, w *withdrawal.Withdrawal, from withdrawal.Status) error
}

type MovementKind string

const (
	MovementPayout     MovementKind = "PAYOUT"
	MovementWithdrawal MovementKind = "WITHDRAWAL"
)

// BalanceRepository owns users.balance_cents. Every credit or debit appends
// a balance_movements row in the same statement batch.
type BalanceRepository interface {
	GetForUpdate(ctx context.Context, userID uuid.UUID) (money.Money, error)
	Credit(ctx context.Context, userID uuid.UUID, amount money.Money, kind MovementKind, reference uuid.UUID) error
	// Debit fails with InsufficientBalance instead of going negative.
	Debit(ctx context.Context, userID uuid.UUID, amount money.Money, kind MovementKind, reference uuid.UUID) error
}

type ProServiceSnapshot struct {
	ID             uuid.UUID
	ProfessionalID uuid.UUID
	Category       string
	Price          money.Money
	IsActive       bool
}

type ProServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProServiceSnapshot, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, topic string, key uuid.UUID, payload []byte, runAt time.Time) error
}

// IdempotencyRecord remembers the entity a keyed request created.
type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ResultID    uuid.UUID
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

type IdempotencyRepository interface {
	// Find fails with NotFound for unknown keys and keys expired at now.
	Find(ctx context.Context, key, userID uuid.UUID, endpoint string, now time.Time) (*IdempotencyRecord, error)
	// Save stores rec, replacing an expired record for the same key. A live
	// record fails with Conflict.
	Save(ctx context.Context, rec IdempotencyRecord) error
}
