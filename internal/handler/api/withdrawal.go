package api

import (
	"net/http"

	reqdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/request"
	resdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/response"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/httperr"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WithdrawalHandler struct {
	cmds commands.WithdrawalCommands
	q    queries.BalanceQueries
}

func NewWithdrawalHandler(cmds commands.WithdrawalCommands, q queries.BalanceQueries) *WithdrawalHandler {
	return &WithdrawalHandler{cmds: cmds, q: q}
}

// @Summary Get balance
// @Description Current balance with the latest movements
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 404 {object} httperr.Response
// @Router /balance [get]
func (h *WithdrawalHandler) Balance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetBalance(c.Request.Context(), actor.ID, actor)
	if err != nil {
		httperr.Abort(c, err, "Balance not available")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

// @Summary Request withdrawal
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID replaying the first request made with it"
// @Param request body reqdto.RequestWithdrawalRequest true "Withdrawal"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /withdrawals [post]
func (h *WithdrawalHandler) Request(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.RequestWithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err, "Invalid amount")
		return
	}
	cmd.IdempotencyKey = key
	id, err := h.cmds.RequestWithdrawal(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.Abort(c, err, "Withdrawal failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary List my withdrawals
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.WithdrawalResponse
// @Router /withdrawals [get]
func (h *WithdrawalHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	h.list(c, actor.ID)
}

// @Summary Withdrawal queue
// @Description All users' withdrawals, filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.WithdrawalResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/withdrawals [get]
func (h *WithdrawalHandler) ListAll(c *gin.Context) {
	h.list(c, uuid.Nil)
}

func (h *WithdrawalHandler) list(c *gin.Context, userID uuid.UUID) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListWithdrawals(c.Request.Context(), userID, actor, c.Query("status"), cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "List withdrawals failed")
		return
	}
	c.JSON(http.StatusOK, listResponse("withdrawals", resdto.FromWithdrawalList(items), next))
}

// @Summary Approve withdrawal
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Withdrawal ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/withdrawals/{id}/approve [post]
func (h *WithdrawalHandler) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.ApproveWithdrawal(c.Request.Context(), id, actor); err != nil {
		httperr.Abort(c, err, "Approve failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject withdrawal
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Withdrawal ID"
// @Param request body reqdto.RejectWithdrawalRequest true "Reason"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/withdrawals/{id}/reject [post]
func (h *WithdrawalHandler) Reject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RejectWithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.RejectWithdrawal(c.Request.Context(), id, req.Reason, actor); err != nil {
		httperr.Abort(c, err, "Reject failed")
		return
	}
	c.Status(http.StatusNoContent)
}
