package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"parking-tracker-backend/config"
	"parking-tracker-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	r := gin.Default()
	r.Use(mw.CORS())

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	// The ledger endpoints are cheap but hit on every page load; a short
	// cache absorbs that. Spot state is never cached so the booking flow
	// always reads its own writes.
	caching := mw.Cache(handler.cache, time.Duration(cfg.Server.CacheTTLSeconds)*time.Second)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/spots", handler.GetSpots)
		api.PUT("/spots/:id", handler.PutSpot)
		api.POST("/reset", handler.ResetSpots)

		api.GET("/history", caching, handler.GetHistory)
		api.GET("/upcoming", caching, handler.GetUpcoming)
		api.DELETE("/upcoming/:id", handler.DeleteUpcoming)

		api.GET("/events", handler.StreamEvents)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
