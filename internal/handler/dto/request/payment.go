package request

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"

	"github.com/google/uuid"
)

type InitiatePaymentRequest struct {
	Method string `json:"method" binding:"required,oneof=card transfer mobile_payment cash"`
}

type RefundRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type RequestWithdrawalRequest struct {
	PaymentMethodID uuid.UUID `json:"payment_method_id" binding:"required"`
	AmountCents     int64     `json:"amount_cents" binding:"required,gt=0"`
}

func (r *RequestWithdrawalRequest) ToCommand() (commands.RequestWithdrawalRequest, error) {
	amount, err := money.New(r.AmountCents)
	if err != nil {
		return commands.RequestWithdrawalRequest{}, err
	}
	return commands.RequestWithdrawalRequest{PaymentMethodID: r.PaymentMethodID, Amount: amount}, nil
}

type RejectWithdrawalRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
