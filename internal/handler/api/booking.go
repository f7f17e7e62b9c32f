package api

import (
	"context"
	"net/http"

	reqdto "hotel-core/internal/handler/dto/request"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"
	"hotel-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve a room for a guest. The room must be free for the whole stay.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), in, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusCreated, id)
}

// @Summary List bookings
// @Description Keyset-paginated, newest first. Regular users see only their own bookings.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param room_id query string false "Room ID"
// @Param guest_id query string false "Guest ID"
// @Param check_in_from query string false "Earliest check-in (YYYY-MM-DD)"
// @Param check_in_to query string false "Latest check-in (YYYY-MM-DD)"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListBookingsQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, cursor, err := query.ToFilter()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	items, next, err := h.q.List(c.Request.Context(), filter, cursor, query.Limit, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary Update booking
// @Description Partial update. Moving dates or room re-checks availability.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	upd, err := req.ToDomain()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, upd, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary Confirm booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.Confirm)
}

// @Summary Check in
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.cmds.CheckIn)
}

// @Summary Check out
// @Description Computes the final bill and schedules checkout cleaning.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CheckOutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings/{id}/check-out [post]
func (h *BookingHandler) CheckOut(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.cmds.CheckOut(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckOutResult(result))
}

// @Summary Cancel booking
// @Description Refunds paid payments according to the cancellation policy.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Optional policy override"
// @Success 200 {object} resdto.CancelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), id, req.PolicyID, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Mark no-show
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.NoShowResponse
// @Failure 403 {object} httperr.Response
// @Router /bookings/{id}/no-show [post]
func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.cmds.MarkNoShow(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNoShowResult(result))
}

// @Summary List booking payments
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentResponse
// @Router /bookings/{id}/payments [get]
func (h *BookingHandler) Payments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.q.Payments(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentList(items))
}

// @Summary Get booking invoice
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/invoice [get]
func (h *BookingHandler) Invoice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	inv, err := h.q.Invoice(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceView(inv))
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID, actor shared.Actor) error) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), id, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, id uuid.UUID) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view, actor.SeesAll()))
}
