package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"car-rental-core/internal/access"
	auction "car-rental-core/internal/auctionService"
	"car-rental-core/internal/config"
	"car-rental-core/internal/events"
	"car-rental-core/internal/locker"
	"car-rental-core/internal/repository"
	reservation "car-rental-core/internal/reservationService"
	"car-rental-core/internal/server"
	"car-rental-core/utils"
)

// storage is everything the engines need from a backend
type storage interface {
	repository.CatalogDB
	repository.ReservationDB
	repository.AuctionDB
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(2)
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Warn("unknown log level, keeping info", map[string]any{"log_level": cfg.LogLevel})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open storage", map[string]any{"storage": cfg.Storage, "error": err.Error()})
	}
	defer closeStore()

	lock, closeLock, err := newLocker(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to set up lock backend", map[string]any{"lock_backend": cfg.Lock.Backend, "error": err.Error()})
	}
	defer closeLock()

	publisher, closePublisher, err := newPublisher(cfg)
	if err != nil {
		utils.Fatal("failed to set up events backend", map[string]any{"events_backend": cfg.Events.Backend, "error": err.Error()})
	}
	defer closePublisher()

	gate := access.NewGate(cfg.Access, store)
	reservationSvc := reservation.NewReservationService(store, store,
		reservation.WithAccessChecker(gate),
		reservation.WithLocker(lock),
		reservation.WithPublisher(publisher),
	)
	biddingSvc := auction.NewBiddingService(store, store, gate,
		auction.WithLocker(lock),
		auction.WithPublisher(publisher),
	)

	router := server.SetupRouter(reservationSvc, biddingSvc, nil)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
		}
	}()

	utils.Info("starting car rental server", map[string]any{
		"addr":           cfg.HTTPAddr,
		"storage":        cfg.Storage,
		"lock_backend":   cfg.Lock.Backend,
		"events_backend": cfg.Events.Backend,
		"access_enforce": cfg.Access.Enforce,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
	utils.Info("server stopped", nil)
}

func openStorage(ctx context.Context, cfg config.Config) (storage, func(), error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := repository.OpenPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresRepo(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, func() { _ = db.Close() }, nil
	default:
		repo := repository.NewMemoryRepo()
		if cfg.SeedDemoData {
			seedDemoData(repo, time.Now().UTC())
		}
		return repo, func() {}, nil
	}
}

func newLocker(ctx context.Context, cfg config.Config) (locker.Locker, func(), error) {
	if cfg.Lock.Backend != config.LockRedis {
		return locker.NewKeyedMutex(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	l := locker.NewRedisLocker(client,
		locker.WithRedisLockerExpiry(cfg.Lock.Expiry),
		locker.WithRedisLockerTries(cfg.Lock.Tries),
	)
	return l, func() { _ = client.Close() }, nil
}

func newPublisher(cfg config.Config) (events.Publisher, func(), error) {
	if cfg.Events.Backend != config.EventsAMQP {
		return events.NewLogPublisher(), func() {}, nil
	}

	p, err := events.DialAMQP(cfg.Events.AMQPURL, cfg.Events.Exchange)
	if err != nil {
		return nil, nil, err
	}
	return p, func() { _ = p.Close() }, nil
}
