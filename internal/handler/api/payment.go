package api

import (
	"net/http"

	reqdto "hotel-core/internal/handler/dto/request"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create payment
// @Description Records a PENDING payment against a checked-out booking.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Create payment request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Payment status"
// @Param booking_id query string false "Booking ID"
// @Param limit query int false "Max rows (max 200)"
// @Success 200 {array} resdto.PaymentResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListPaymentsQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	items, err := h.q.List(c.Request.Context(), filter, query.Limit, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentList(items))
}

// @Summary Process payment
// @Description Marks a payment PAID. The first successful payment on a booking issues its invoice; later ones return the existing invoice.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.ProcessPaymentResponse
// @Failure 400 {object} httperr.Response
// @Router /payments/{id}/process [post]
func (h *PaymentHandler) Process(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.cmds.Process(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProcessResult(result))
}

// @Summary Fail payment
// @Tags payments
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Router /payments/{id}/fail [post]
func (h *PaymentHandler) Fail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Fail(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Refund payment
// @Tags payments
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Router /payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Refund(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Generate invoice
// @Description Issues the booking's invoice if it has none yet. Requires a settled final bill.
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 201 {object} resdto.InvoiceResponse "Issued by this call"
// @Success 200 {object} resdto.InvoiceResponse "Already issued"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id} [post]
func (h *PaymentHandler) GenerateInvoice(c *gin.Context) {
	bookingID, ok := pathID(c)
	if !ok {
		return
	}

	inv, created, err := h.cmds.GenerateInvoice(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromInvoice(inv))
}
