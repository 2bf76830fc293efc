package api

import (
	"context"
	"net/http"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	reqdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/request"
	resdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/response"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/httperr"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	cmds commands.TransactionCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary Book service
// @Description Opens a transaction from a professional's proactive service
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID replaying the first booking made with it"
// @Param request body reqdto.BookServiceRequest true "Booking"
// @Success 201 {object} resdto.TransactionResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /transactions [post]
func (h *TransactionHandler) Book(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.BookServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd := req.ToCommand()
	cmd.IdempotencyKey = key
	result, err := h.cmds.BookService(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.Abort(c, err, "Booking failed")
		return
	}
	markReplayed(c, result.Replayed)
	c.JSON(http.StatusCreated, resdto.FromTransactionResult(result))
}

// @Summary Get transaction
// @Description Get a transaction with its status history
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetTransaction(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err, "Transaction not available")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionView(view))
}

// @Summary List my transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Router /transactions [get]
func (h *TransactionHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	filters := queries.TransactionFilters{Status: c.Query("status")}
	items, next, err := h.q.ListTransactions(c.Request.Context(), actor.ID, actor, filters, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "List transactions failed")
		return
	}
	c.JSON(http.StatusOK, listResponse("transactions", resdto.FromTransactionList(items), next))
}

// @Summary Schedule transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.ScheduleRequest true "Date"
// @Success 200 {object} resdto.TransactionResultResponse
// @Failure 409 {object} httperr.Response
// @Router /transactions/{id}/schedule [post]
func (h *TransactionHandler) Schedule(c *gin.Context) {
	var req reqdto.ScheduleRequest
	h.transition(c, func(ctx context.Context, id uuid.UUID, actor user.Actor) (*commands.TransactionResult, error) {
		return h.cmds.Schedule(ctx, id, req.ScheduledDate, actor)
	}, &req, true)
}

// @Summary Start work
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /transactions/{id}/start [post]
func (h *TransactionHandler) Start(c *gin.Context) {
	h.transition(c, h.cmds.Start, nil, false)
}

// @Summary Complete transaction
// @Description Completes the work and credits the professional's payout
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /transactions/{id}/complete [post]
func (h *TransactionHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.Complete, nil, false)
}

// @Summary Cancel transaction
// @Description Cancels and refunds any captured funding payment
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.CancelRequest false "Reason"
// @Success 200 {object} resdto.TransactionResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /transactions/{id}/cancel [post]
func (h *TransactionHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelRequest
	h.transition(c, func(ctx context.Context, id uuid.UUID, actor user.Actor) (*commands.TransactionResult, error) {
		return h.cmds.Cancel(ctx, id, req.Reason, actor)
	}, &req, false)
}

type transitionFunc func(ctx context.Context, id uuid.UUID, actor user.Actor) (*commands.TransactionResult, error)

// body is bound before fn runs. An empty body is skipped unless required.
func (h *TransactionHandler) transition(c *gin.Context, fn transitionFunc, body any, required bool) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if body != nil {
		if required || c.Request.ContentLength > 0 {
			if !bindJSON(c, body) {
				return
			}
		}
	}
	result, err := fn(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err, "Transition failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionResult(result))
}
