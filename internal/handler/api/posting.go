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

type PostingHandler struct {
	cmds commands.PostingCommands
	q    queries.PostingQueries
}

func NewPostingHandler(cmds commands.PostingCommands, q queries.PostingQueries) *PostingHandler {
	return &PostingHandler{cmds: cmds, q: q}
}

// @Summary Create posting
// @Description Publish a service request that professionals can bid on
// @Tags postings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePostingRequest true "Create posting request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /postings [post]
func (h *PostingHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreatePostingRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err, "Invalid price range")
		return
	}
	id, err := h.cmds.CreatePosting(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.Abort(c, err, "Create posting failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary Get posting
// @Description Get a posting with the offers visible to the caller
// @Tags postings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Posting ID"
// @Success 200 {object} resdto.PostingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /postings/{id} [get]
func (h *PostingHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetPosting(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err, "Posting not available")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPostingView(view))
}

// @Summary List open postings
// @Tags postings
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.PostingResponse
// @Failure 400 {object} httperr.Response
// @Router /postings [get]
func (h *PostingHandler) ListOpen(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListOpenPostings(c.Request.Context(), c.Query("category"), cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "List postings failed")
		return
	}
	c.JSON(http.StatusOK, listResponse("postings", resdto.FromPostingList(items), next))
}

// @Summary Submit offer
// @Description Professional bids on an open posting
// @Tags postings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Posting ID"
// @Param request body reqdto.SubmitOfferRequest true "Offer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /postings/{id}/offers [post]
func (h *PostingHandler) SubmitOffer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	postingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SubmitOfferRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err, "Invalid offer price")
		return
	}
	id, err := h.cmds.SubmitOffer(c.Request.Context(), postingID, cmd, actor)
	if err != nil {
		httperr.Abort(c, err, "Submit offer failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary Accept offer
// @Description Accepts one offer, rejects the rest and opens the transaction
// @Tags postings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.AcceptOfferRequest false "Promo code and schedule"
// @Success 201 {object} resdto.AcceptOfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /offers/{id}/accept [post]
func (h *PostingHandler) AcceptOffer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	offerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AcceptOfferRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.AcceptOffer(c.Request.Context(), offerID, req.ToCommand(), actor)
	if err != nil {
		httperr.Abort(c, err, "Accept offer failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAcceptOfferResult(result))
}

// @Summary Force close posting
// @Description Closes a posting and rejects its pending offers
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Posting ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/postings/{id}/close [post]
func (h *PostingHandler) ForceClose(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.ForceClosePosting(c.Request.Context(), id, actor); err != nil {
		httperr.Abort(c, err, "Close posting failed")
		return
	}
	c.Status(http.StatusNoContent)
}
