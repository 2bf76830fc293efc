package api

import (
	"net/http"

	reqdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/request"
	resdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/response"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/httperr"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	cmds  commands.PromoCommands
	clock clock.Clock
}

func NewPromoHandler(cmds commands.PromoCommands, clk clock.Clock) *PromoHandler {
	return &PromoHandler{cmds: cmds, clock: clk}
}

// @Summary Create promo code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromoCodeRequest true "Promo code"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/promo-codes [post]
func (h *PromoHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreatePromoCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(h.clock.Now())
	if err != nil {
		httperr.Abort(c, err, "Invalid discount value")
		return
	}
	id, err := h.cmds.CreatePromoCode(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.Abort(c, err, "Create promo code failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary Preview discount
// @Description Validates a code against an amount without consuming a use
// @Tags promo-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewDiscountRequest true "Preview"
// @Success 200 {object} resdto.DiscountPreviewResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /promo-codes/preview [post]
func (h *PromoHandler) Preview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.PreviewDiscountRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err, "Invalid amount")
		return
	}
	preview, err := h.cmds.PreviewDiscount(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.Abort(c, err, "Promo code not applicable")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountPreview(preview))
}
