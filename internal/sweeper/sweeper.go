// Package sweeper periodically releases spots whose booking window elapsed.
package sweeper

import (
	"context"
	"log"
	"time"

	"parking-tracker-backend/config"
	"parking-tracker-backend/internal/booking"
	"parking-tracker-backend/internal/civil"
	"parking-tracker-backend/internal/notification"
)

// Service runs the expiration sweep on a fixed period. It is owned by the
// process lifecycle: cancelling the context stops it cleanly.
type Service struct {
	cfg  *config.Config
	svc  *booking.Service
	civ  *civil.Time
	pool *notification.WorkerPool
}

// NewService creates a sweeper. pool may be nil when push is disabled.
func NewService(cfg *config.Config, svc *booking.Service, civ *civil.Time, pool *notification.WorkerPool) *Service {
	return &Service{cfg: cfg, svc: svc, civ: civ, pool: pool}
}

// Run starts the sweep loop and blocks until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Sweeper.Enabled {
		log.Println("Sweeper is disabled. Not starting.")
		return
	}
	log.Printf("Starting expiration sweeper, interval %s", s.cfg.Sweeper.Interval)

	timer := time.NewTimer(s.cfg.Sweeper.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Expiration sweeper shutting down.")
			return
		case <-timer.C:
			s.SweepOnce()
			timer.Reset(s.cfg.Sweeper.Interval)
		}
	}
}

// SweepOnce releases every overdue spot and dispatches an availability
// notification per released spot. Sweeping again with no time elapsed
// releases nothing, so the loop never re-announces a spot.
func (s *Service) SweepOnce() {
	released := s.svc.ExpireDue(s.civ.Now())
	for _, spot := range released {
		log.Printf("Sweeper released expired spot %s", spot.ID)
		if s.pool != nil {
			s.pool.Dispatch(spot.ID)
		}
	}
}
