package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoollibrary/lendingengine/library/engine"
)

func (h *Handler) RequestReservation(c *gin.Context) {
	var req RequestReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	reservation, err := h.engine.RequestReservation(c.Request.Context(), engine.NewReservation{
		ReservationID: req.ReservationID,
		BookID:        req.BookID,
		MemberID:      req.MemberID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservationResponse(reservation))
}

func (h *Handler) Reservation(c *gin.Context) {
	reservation, err := h.engine.Reservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationResponse(reservation))
}

func (h *Handler) CancelReservation(c *gin.Context) {
	var req CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	reservation, err := h.engine.CancelReservation(c.Request.Context(), c.Param("id"), req.MemberID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationResponse(reservation))
}

// FulfillReservation accepts an empty body, the transaction id is generated then.
func (h *Handler) FulfillReservation(c *gin.Context) {
	var req FulfillReservationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithBadRequest(c, err)
			return
		}
	}

	transaction, err := h.engine.FulfillReservation(c.Request.Context(), c.Param("id"), req.TransactionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transactionResponse(transaction, nil))
}

func (h *Handler) PendingReservations(c *gin.Context) {
	queue, err := h.engine.PendingReservations(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := ReservationQueueResponse{
		BookID:       queue.BookID,
		Reservations: make([]ReservationResponse, 0, queue.Count),
		Count:        queue.Count,
	}

	for _, pending := range queue.Reservations {
		r := reservationResponse(pending.Reservation)
		followUpDue := pending.FollowUpDue
		r.FollowUpDue = &followUpDue
		response.Reservations = append(response.Reservations, r)
	}

	c.JSON(http.StatusOK, response)
}
