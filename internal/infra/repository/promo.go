package repository

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/pgconv"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromoCodeRepository struct {
	db shared.DBTX
}

func NewPromoCodeRepository(db shared.DBTX) *PromoCodeRepository {
	return &PromoCodeRepository{db: db}
}

const promoColumns = `id, code, discount_type, discount_value::text, max_uses, uses_count, max_uses_per_user,
	valid_from, valid_until, target_category, is_active, created_at`

func (r *PromoCodeRepository) Create(ctx context.Context, p *promo.PromoCode) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO promo_codes (id, code, discount_type, discount_value, max_uses, uses_count, max_uses_per_user,
			valid_from, valid_until, target_category, is_active, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID(), p.Code().String(), string(p.Discount().Type()), p.Discount().Value().String(),
		pgconv.IntPtrToPgtype(p.MaxUses()), p.UsesCount(), pgconv.IntPtrToPgtype(p.MaxUsesPerUser()),
		p.ValidFrom(), pgconv.TimePtrToPgtype(p.ValidUntil()), pgconv.StringPtrToPgtype(p.TargetCategory()),
		p.IsActive(), p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create promo code", err)
	}
	return nil
}

func (r *PromoCodeRepository) FindByCode(ctx context.Context, code string) (*promo.PromoCode, error) {
	return r.find(ctx, `SELECT `+promoColumns+` FROM promo_codes WHERE code = $1`, code)
}

func (r *PromoCodeRepository) FindByCodeForUpdate(ctx context.Context, code string) (*promo.PromoCode, error) {
	return r.find(ctx, `SELECT `+promoColumns+` FROM promo_codes WHERE code = $1 FOR UPDATE`, code)
}

func (r *PromoCodeRepository) find(ctx context.Context, query, code string) (*promo.PromoCode, error) {
	p, err := scanPromoCode(r.db.QueryRow(ctx, query, code))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load promo code", err)
	}
	return p, nil
}

func (r *PromoCodeRepository) CountUsages(ctx context.Context, codeID, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM promo_code_usages WHERE code_id = $1 AND user_id = $2`, codeID, userID,
	).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count promo usages", err)
	}
	return n, nil
}

func (r *PromoCodeRepository) RecordUsage(ctx context.Context, u promo.Usage) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE promo_codes SET uses_count = uses_count + 1
		WHERE id = $1 AND (max_uses IS NULL OR uses_count < max_uses)`, u.CodeID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment promo uses", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Wrapf(errs.ErrUsageExceeded, "promo code %s exhausted", u.CodeID)
	}

	if _, err := r.db.Exec(ctx, `
		INSERT INTO promo_code_usages (code_id, user_id, transaction_id, used_at)
		VALUES ($1, $2, $3, $4)`,
		u.CodeID, u.UserID, u.TransactionID, u.UsedAt,
	); err != nil {
		return infra.WrapRepoErr("failed to record promo usage", err)
	}
	return nil
}

func scanPromoCode(row pgx.Row) (*promo.PromoCode, error) {
	var (
		id                   uuid.UUID
		code, kind, value    string
		maxUses, maxPerUser  pgtype.Int4
		usesCount            int
		validFrom, createdAt time.Time
		validUntil           pgtype.Timestamptz
		targetCategory       pgtype.Text
		isActive             bool
	)
	if err := row.Scan(&id, &code, &kind, &value, &maxUses, &usesCount, &maxPerUser,
		&validFrom, &validUntil, &targetCategory, &isActive, &createdAt); err != nil {
		return nil, err
	}

	amount, err := pgconv.DecimalFromText(value)
	if err != nil {
		return nil, errs.Wrapf(err, "promo code %s has malformed discount %q", code, value)
	}
	discount, err := promo.NewDiscount(promo.DiscountType(kind), amount)
	if err != nil {
		return nil, errs.Wrapf(err, "promo code %s", code)
	}

	return promo.ReconstructPromoCode(id, code, discount,
		pgconv.IntPtrFromPgtype(maxUses), usesCount, pgconv.IntPtrFromPgtype(maxPerUser),
		validFrom, pgconv.TimePtrFromPgtype(validUntil), pgconv.StringPtrFromPgtype(targetCategory),
		isActive, createdAt), nil
}
