package api

import (
	"context"
	"net/http"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	reqdto "booking-registry/internal/handler/dto/request"
	resdto "booking-registry/internal/handler/dto/response"
	"booking-registry/internal/handler/httperr"
	"booking-registry/internal/handler/middleware"
	"booking-registry/internal/usecase/commands"
	"booking-registry/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a pending booking priced from the current room prices and tax
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID) for safe retries"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetAccount(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var idempotencyKey *uuid.UUID
	if raw := c.GetHeader(idempotencyKeyHeader); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
			return
		}
		idempotencyKey = &key
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), actor, req.ToInput(), idempotencyKey)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	c.JSON(status, resdto.NewCreateBookingResponse(result.BookingID, result.IsReplayed))
}

// @Summary Get booking
// @Description Get the full booking record
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	h.respondWithBooking(c, id)
}

// @Summary Get booking core
// @Description Get the pricing facet of a booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingCoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/core [get]
func (h *BookingHandler) GetCore(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.q.GetCore(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingCoreView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking details
// @Description Get the lifecycle facet of a booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/details [get]
func (h *BookingHandler) GetDetails(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.q.GetDetails(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingDetailsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List booking events
// @Description List the state changes recorded for a booking, oldest first
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {array} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/events [get]
func (h *BookingHandler) ListEvents(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	events, err := h.q.ListEvents(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": resdto.FromEventViews(events)})
}

// @Summary Confirm booking
// @Description Customer confirms a pending booking; opens the 24h payment window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmBooking)
}

// @Summary Pay for booking
// @Description Collect the booking total from the caller into escrow. Requires a prior ledger approval.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings/{id}/pay [post]
func (h *BookingHandler) Pay(c *gin.Context) {
	h.transition(c, h.cmds.PayForBooking)
}

// @Summary Cancel booking
// @Description Cancel an unpaid booking once its payment window has elapsed
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelBooking)
}

// @Summary Refund booking
// @Description Return the paid amount from escrow to the payer
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/refund [post]
func (h *BookingHandler) Refund(c *gin.Context) {
	h.transition(c, h.cmds.Refund)
}

// @Summary Toggle refundable flag
// @Description Owner flips the refundable flag of a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.RefundableResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/refundable [post]
func (h *BookingHandler) ToggleRefundable(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetAccount(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	refundable, err := h.cmds.ModifyRefundableStatus(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RefundableResponse{ID: int64(id), Refundable: refundable})
}

type transitionFunc func(ctx context.Context, actor account.Account, id booking.ID) error

func (h *BookingHandler) transition(c *gin.Context, fn transitionFunc) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetAccount(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := fn(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithBooking(c, id)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, id booking.ID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func bookingID(c *gin.Context) (booking.ID, bool) {
	id, err := booking.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
