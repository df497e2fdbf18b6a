package api

import (
	"github.com/SherClockHolmes/webpush-go"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"parking-tracker-backend/internal/booking"
	"parking-tracker-backend/internal/notification"
	"parking-tracker-backend/internal/notify"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	svc         *booking.Service
	broadcaster *notify.Broadcaster
	db          *gorm.DB
	webpush     *webpush.Options
	pool        *notification.WorkerPool
	cache       *cache.Cache
}

// NewHandler creates a new API handler. db, webpushOptions and pool are nil
// when push notifications are disabled.
func NewHandler(svc *booking.Service, broadcaster *notify.Broadcaster, db *gorm.DB, webpushOptions *webpush.Options, pool *notification.WorkerPool, cacheStore *cache.Cache) *Handler {
	return &Handler{
		svc:         svc,
		broadcaster: broadcaster,
		db:          db,
		webpush:     webpushOptions,
		pool:        pool,
		cache:       cacheStore,
	}
}

// flushCache drops every cached GET response after a mutation.
func (h *Handler) flushCache() {
	if h.cache != nil {
		h.cache.Flush()
	}
}
