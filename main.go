// File: scheduler/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scheduler/config"
	"scheduler/database"
	reservationRepo "scheduler/database/repository/reservation"
	"scheduler/handlers"
	"scheduler/middleware"
	"scheduler/routes"
	"scheduler/services/booking"
	"scheduler/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(rootCtx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("main: mongo unavailable", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	// repositories.
	resRepo := reservationRepo.NewMongoReservationRepo(mongoClient.Database(cfg.MongoDatabase))
	if err := resRepo.EnsureIndexes(rootCtx); err != nil {
		logger.Fatal("main: failed to ensure reservation indexes", zap.Error(err))
	}

	// optional list cache.
	var (
		redisClient *redis.Client
		listCache   booking.ListCache
	)
	if cfg.RedisAddr != "" {
		redisClient, err = utils.NewRedisClient(rootCtx, cfg)
		if err != nil {
			logger.Warn("main: list cache disabled", zap.Error(err))
		} else {
			listCache = utils.NewRedisListCache(redisClient, cfg.ListCacheTTL)
			logger.Info("List cache enabled", zap.String("redis", cfg.RedisAddr), zap.Duration("ttl", cfg.ListCacheTTL))
		}
	}

	// services.
	bookingService := booking.NewBookingService(resRepo, listCache, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	monitor := utils.NewHealthMonitor(mongoClient, redisClient, logger)
	monitor.Start(rootCtx, 60*time.Second)

	handlerBundle := &handlers.HandlerBundle{
		ListReservationsHandler:  bookingHandler.ListReservations,
		CreateReservationHandler: bookingHandler.CreateReservation,
		HealthHandler:            handlers.HealthHandler(monitor),
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler(logger))
	routes.RegisterRoutes(router, handlerBundle, cfg.AllowedOrigins())

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		if cfg.TLSEnabled() {
			logger.Sugar().Infof("Starting HTTPS server on %s...", srv.Addr)
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			logger.Sugar().Infof("Starting server on %s...", srv.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("main: redis close failed", zap.Error(err))
		}
	}
	if err := database.Disconnect(mongoClient, cfg.ShutdownTimeout); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
