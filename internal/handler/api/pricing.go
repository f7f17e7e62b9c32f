package api

import (
	"net/http"

	reqdto "hotel-core/internal/handler/dto/request"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	cmds commands.PricingRuleCommands
	q    queries.PricingQueries
}

func NewPricingHandler(cmds commands.PricingRuleCommands, q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{cmds: cmds, q: q}
}

// @Summary Quote a stay
// @Description Applies every active pricing rule to the base price, highest priority first.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	quote, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary List pricing rules
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param is_active query bool false "Filter by active flag"
// @Param rule_type query string false "Filter by rule type"
// @Success 200 {array} resdto.PricingRuleResponse
// @Router /pricing-rules [get]
func (h *PricingHandler) ListRules(c *gin.Context) {
	var query reqdto.ListPricingRulesQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	rules, err := h.q.ListRules(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingRuleList(rules))
}

// @Summary Get pricing rule
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 200 {object} resdto.PricingRuleResponse
// @Failure 404 {object} httperr.Response
// @Router /pricing-rules/{id} [get]
func (h *PricingHandler) GetRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondWithRule(c, http.StatusOK, id)
}

// @Summary Create pricing rule
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePricingRuleRequest true "Create rule request"
// @Success 201 {object} resdto.PricingRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /pricing-rules [post]
func (h *PricingHandler) CreateRule(c *gin.Context) {
	var req reqdto.CreatePricingRuleRequest
	if !bindJSON(c, &req) {
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithRule(c, http.StatusCreated, id)
}

// @Summary Update pricing rule
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpdatePricingRuleRequest true "Update rule request"
// @Success 200 {object} resdto.PricingRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing-rules/{id} [put]
func (h *PricingHandler) UpdateRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePricingRuleRequest
	if !bindJSON(c, &req) {
		return
	}
	upd, err := req.ToDomain()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, upd); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithRule(c, http.StatusOK, id)
}

// @Summary Delete pricing rule
// @Tags pricing
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /pricing-rules/{id} [delete]
func (h *PricingHandler) DeleteRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PricingHandler) respondWithRule(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetRule(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromPricingRuleView(view))
}
