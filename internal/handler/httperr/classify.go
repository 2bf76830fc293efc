package httperr

import (
	"net/http"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/posting"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/review"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
)

type mapping struct {
	target error
	status int
	code   string
}

// Order matters: repository errors match several sentinels through Is.
var mappings = []mapping{
	{errs.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{errs.ErrTerminalState, http.StatusConflict, "TERMINAL_STATE"},
	{errs.ErrInvalidState, http.StatusConflict, "INVALID_STATE"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "IDEMPOTENCY_KEY_REUSED"},
	{errs.ErrConflict, http.StatusConflict, "CONFLICT"},
	{errs.ErrExpired, http.StatusUnprocessableEntity, "PROMO_EXPIRED"},
	{errs.ErrUsageExceeded, http.StatusUnprocessableEntity, "PROMO_USAGE_EXCEEDED"},
	{errs.ErrPerUserLimitExceeded, http.StatusUnprocessableEntity, "PROMO_PER_USER_LIMIT_EXCEEDED"},
	{errs.ErrCategoryMismatch, http.StatusUnprocessableEntity, "PROMO_CATEGORY_MISMATCH"},
	{errs.ErrInsufficientBalance, http.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE"},
}

var validationErrors = []error{
	queries.ErrInvalidCursor,
	posting.ErrEmptyTitle,
	posting.ErrEmptyCategory,
	posting.ErrTitleTooLong,
	posting.ErrInvalidPriceBox,
	posting.ErrOfferMessageTooLong,
	promo.ErrInvalidPromoCode,
	promo.ErrInvalidDiscountType,
	promo.ErrInvalidDiscountAmount,
	promo.ErrInvalidDiscountPercent,
	promo.ErrInvalidUsageLimit,
	promo.ErrInvalidWindow,
	review.ErrInvalidRating,
	review.ErrEmptyComment,
	review.ErrCommentTooLong,
	transaction.ErrNotesTooLong,
}

// Classify returns the HTTP status and stable error code for err.
func Classify(err error) (int, string) {
	if errs.IsAny(err, validationErrors...) {
		return http.StatusBadRequest, "VALIDATION_FAILED"
	}
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL"
}
