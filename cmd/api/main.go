package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cargobook/booking-system/internal/api"
	"github.com/cargobook/booking-system/internal/core/service"
	mongodb "github.com/cargobook/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/cargobook/booking-system/internal/infrastructure/db/redis"
	"github.com/cargobook/booking-system/internal/infrastructure/queue"
	"github.com/cargobook/booking-system/internal/pkg/config"
	"github.com/cargobook/booking-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        CargoBook Booking API
// @version      1.0
// @description  Shipment booking, payment confirmation and public tracking.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	shipmentRepo := mongodb.NewShipmentRepository(db)
	addressRepo := mongodb.NewAddressRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	sequenceRepo := mongodb.NewSequenceRepository(db, cfg.Sequence.Base)

	for name, ensure := range map[string]func(context.Context) error{
		"shipments": shipmentRepo.EnsureIndexes,
		"addresses": addressRepo.EnsureIndexes,
		"users":     authRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	// --- Payment pipeline ---
	ids := service.NewTrackingIDGenerator(sequenceRepo)
	dedup := redisdb.NewPaymentDedup(rdb)
	paymentService := service.NewPaymentService(shipmentRepo, ids, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.Dispatcher.Workers, paymentService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Mongo:        db,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		SequenceBase: cfg.Sequence.Base,
		Dispatcher:   dispatcher,
		Logger:       log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped cleanly")
}
