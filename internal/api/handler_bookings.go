package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-tracker-backend/internal/store"
)

// GetHistory handles GET /api/history, most recent booking first.
func (h *Handler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.History())
}

// GetUpcoming handles GET /api/upcoming, most recently queued booking first.
func (h *Handler) GetUpcoming(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Upcoming())
}

// DeleteUpcoming handles DELETE /api/upcoming/{id}, cancelling one queued
// future booking.
func (h *Handler) DeleteUpcoming(c *gin.Context) {
	err := h.svc.CancelUpcoming(c.Param("id"))
	if errors.Is(err, store.ErrBookingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	h.flushCache()
	c.JSON(http.StatusOK, gin.H{"message": "Booking removed"})
}
