package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"parking-tracker-backend/config"
	"parking-tracker-backend/internal/api"
	"parking-tracker-backend/internal/booking"
	"parking-tracker-backend/internal/civil"
	"parking-tracker-backend/internal/db"
	"parking-tracker-backend/internal/notification"
	"parking-tracker-backend/internal/notify"
	"parking-tracker-backend/internal/store"
	"parking-tracker-backend/internal/sweeper"
)

func main() {
	logger := log.New(os.Stdout, "parking-backend ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	civ, err := civil.New(cfg.Parking.Timezone)
	if err != nil {
		logger.Fatalf("failed to initialize reference timezone: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Push notifications only run with configured VAPID keys.
	var (
		gormDB         *gorm.DB
		webpushOptions *webpush.Options
		pool           *notification.WorkerPool
	)
	if cfg.Push.PublicKey != "" && cfg.Push.PrivateKey != "" {
		gormDB, err = db.Init(&cfg.Database)
		if err != nil {
			logger.Fatalf("failed to initialize database: %v", err)
		}
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		pool = notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, webpushOptions)
		pool.Start(ctx)
		logger.Println("push notification worker pool started")
	} else {
		logger.Println("VAPID keys not configured; push notifications disabled")
	}

	spots := store.NewSpotStore(cfg.Parking.SpotCount, civ)
	history := store.NewLedger(cfg.Parking.LedgerCapacity)
	upcoming := store.NewLedger(cfg.Parking.LedgerCapacity)
	broadcaster := notify.NewBroadcaster()
	svc := booking.NewService(civ, spots, history, upcoming, broadcaster)
	logger.Printf("parking lot initialized with %d spot(s)", cfg.Parking.SpotCount)

	sweep := sweeper.NewService(cfg, svc, civ, pool)
	go sweep.Run(ctx)

	cacheStore := cache.New(time.Duration(cfg.Server.CacheTTLSeconds)*time.Second, 10*time.Minute)
	handler := api.NewHandler(svc, broadcaster, gormDB, webpushOptions, pool, cacheStore)
	router := api.NewRouter(cfg, handler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
