package api

import (
	"net/http"

	reqdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/request"
	resdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/response"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/httperr"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Pay escrow
// @Description Creates a pending payment for the transaction escrow. Capture happens asynchronously.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param Idempotency-Key header string false "UUID replaying the first payment made with it"
// @Param request body reqdto.InitiatePaymentRequest true "Payment method"
// @Success 202 {object} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /transactions/{id}/payments [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txID, ok := pathID(c, "id")
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.InitiatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.InitiatePayment(c.Request.Context(), commands.InitiatePaymentRequest{
		TransactionID:  txID,
		Method:         req.Method,
		IdempotencyKey: key,
	}, actor)
	if err != nil {
		httperr.Abort(c, err, "Payment failed")
		return
	}
	markReplayed(c, result.Replayed)
	c.JSON(http.StatusAccepted, resdto.FromInitiatePaymentResult(result))
}

// @Summary Refund transaction
// @Description Refunds the captured funding payment of a transaction
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.RefundRequest true "Reason"
// @Success 202 "Accepted"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/transactions/{id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RefundRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Refund(c.Request.Context(), txID, req.Reason, actor); err != nil {
		httperr.Abort(c, err, "Refund failed")
		return
	}
	c.Status(http.StatusAccepted)
}
