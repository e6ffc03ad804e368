package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Book a listing
// @Description Create a reservation. Nights and total price are computed server side.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.BookedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	h.create(c, "id")
}

// CreateBooking serves the legacy POST /api/book/:listingId route.
func (h *ReservationHandler) CreateBooking(c *gin.Context) {
	h.create(c, "listingId")
}

func (h *ReservationHandler) create(c *gin.Context, param string) {
	userID, _, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	listingID, ok := uuidParam(c, param)
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	view, err := h.cmds.CreateReservation(c.Request.Context(), userID, req.ToInput(listingID))
	if err != nil {
		httperr.Abort(c, err, "Booking failed")
		return
	}

	res, err := resdto.NewBookedResponse(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List my reservations
// @Description Reservations of the caller, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	userID, _, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load reservations")
		return
	}

	res, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Pay a reservation
// @Description Marks the caller's reservation as paid. Repeating the call returns the record unchanged.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/pay [post]
func (h *ReservationHandler) MarkPaid(c *gin.Context) {
	userID, _, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	reservationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.cmds.MarkPaid(c.Request.Context(), userID, reservationID)
	if err != nil {
		httperr.Abort(c, err, "Payment failed")
		return
	}

	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
