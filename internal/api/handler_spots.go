package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-tracker-backend/internal/booking"
	"parking-tracker-backend/internal/store"
)

// GetSpots handles GET /api/spots. It returns the full lot snapshot.
func (h *Handler) GetSpots(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Spots())
}

// PutSpot handles PUT /api/spots/{id}: release, immediate booking or future
// booking, decided by the classifier. An active booking or release answers
// with the updated spot; a future booking answers with the queued record so
// callers can tell the spot was not occupied.
func (h *Handler) PutSpot(c *gin.Context) {
	var req booking.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	outcome, err := h.svc.Apply(c.Param("id"), req)
	switch {
	case errors.Is(err, store.ErrSpotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Parking spot not found"})
		return
	case errors.Is(err, booking.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.flushCache()

	switch outcome.Kind {
	case booking.OutcomeFuture:
		c.JSON(http.StatusOK, gin.H{
			"message": "Future booking created",
			"booking": outcome.Booking,
		})
	case booking.OutcomeReleased:
		if h.pool != nil {
			h.pool.Dispatch(outcome.Spot.ID)
		}
		c.JSON(http.StatusOK, outcome.Spot)
	default:
		c.JSON(http.StatusOK, outcome.Spot)
	}
}

// ResetSpots handles POST /api/reset. Every spot returns to available and
// both ledgers are wiped, regardless of anything in flight.
func (h *Handler) ResetSpots(c *gin.Context) {
	h.svc.Reset()
	h.flushCache()
	c.JSON(http.StatusOK, gin.H{"message": "All parking spots have been reset"})
}
