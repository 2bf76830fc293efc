package repository

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/pgconv"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct {
	db shared.DBTX
}

func NewPaymentRepository(db shared.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, user_id, transaction_id, amount_cents, fee_cents, method, reference, status,
	failure_reason, refund_reason, created_at, updated_at`

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID(), p.UserID(), p.TransactionID(), p.Amount().Cents(), p.Fee().Cents(), p.Method(),
		pgconv.StringPtrToPgtype(p.Reference()), string(p.Status()),
		pgconv.StringPtrToPgtype(p.FailureReason()), pgconv.StringPtrToPgtype(p.RefundReason()),
		p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load payment", err)
	}
	return p, nil
}

func (r *PaymentRepository) FindCompletedByTransaction(ctx context.Context, transactionID uuid.UUID) (*payment.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, `
		SELECT `+paymentColumns+` FROM payments
		WHERE transaction_id = $1 AND status = 'COMPLETED'
		FOR UPDATE`, transactionID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load completed payment", err)
	}
	return p, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment, from payment.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments SET
			status = $2,
			fee_cents = $3,
			reference = $4,
			failure_reason = $5,
			refund_reason = $6,
			updated_at = $7
		WHERE id = $1 AND status = $8`,
		p.ID(), string(p.Status()), p.Fee().Cents(), pgconv.StringPtrToPgtype(p.Reference()),
		pgconv.StringPtrToPgtype(p.FailureReason()), pgconv.StringPtrToPgtype(p.RefundReason()),
		p.UpdatedAt(), string(from),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment changed concurrently", nil, infra.KindStaleState)
	}
	return nil
}

func scanPayment(row pgx.Row) (*payment.Payment, error) {
	var (
		p                          payment.ReconstructParams
		amount, fee                int64
		status                     string
		reference, failure, refund pgtype.Text
		createdAt, updatedAt       time.Time
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.TransactionID, &amount, &fee, &p.Method, &reference, &status,
		&failure, &refund, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Amount = money.Money(amount)
	p.Fee = money.Money(fee)
	p.Status = payment.Status(status)
	p.Reference = pgconv.StringPtrFromPgtype(reference)
	p.FailureReason = pgconv.StringPtrFromPgtype(failure)
	p.RefundReason = pgconv.StringPtrFromPgtype(refund)
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	return payment.Reconstruct(p), nil
}
