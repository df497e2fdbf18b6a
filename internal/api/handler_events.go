package api

import (
	"io"

	"github.com/gin-gonic/gin"

	"parking-tracker-backend/internal/notify"
)

// StreamEvents handles GET /api/events, the push channel for connected
// viewers. Every new subscriber first receives initialData with the full
// current snapshot, so it converges even if it missed earlier events, then a
// live feed of spotUpdated and spotsReset. Delivery is best-effort; a
// disconnected viewer simply stops receiving.
func (h *Handler) StreamEvents(c *gin.Context) {
	ch, cancel := h.broadcaster.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent(notify.EventInitialData, h.svc.Spots())
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
