package api

import (
	"net/http"

	reqdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/request"
	resdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/response"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/httperr"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Client reviews the professional of a completed transaction
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /transactions/{id}/review [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateReview(c.Request.Context(), txID, req.ToCommand(), actor)
	if err != nil {
		httperr.Abort(c, err, "Create review failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary List professional reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Professional ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Router /professionals/{id}/reviews [get]
func (h *ReviewHandler) ListByProfessional(c *gin.Context) {
	proID, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByProfessional(c.Request.Context(), proID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "List reviews failed")
		return
	}
	c.JSON(http.StatusOK, listResponse("reviews", resdto.FromReviewList(items), next))
}

// @Summary Professional rating
// @Tags reviews
// @Produce json
// @Param id path string true "Professional ID"
// @Success 200 {object} resdto.RatingSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /professionals/{id}/rating [get]
func (h *ReviewHandler) RatingSummary(c *gin.Context) {
	proID, ok := pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.q.GetRatingSummary(c.Request.Context(), proID)
	if err != nil {
		httperr.Abort(c, err, "Rating not available")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingSummary(summary))
}
