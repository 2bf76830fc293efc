package repository

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProServiceRepository struct {
	db shared.DBTX
}

func NewProServiceRepository(db shared.DBTX) *ProServiceRepository {
	return &ProServiceRepository{db: db}
}

func (r *ProServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ProServiceSnapshot, error) {
	var (
		snap  shared.ProServiceSnapshot
		price int64
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, professional_id, category, price_cents, is_active
		FROM pro_services WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.ProfessionalID, &snap.Category, &price, &snap.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service", err)
	}
	snap.Price = money.Money(price)
	return &snap, nil
}
