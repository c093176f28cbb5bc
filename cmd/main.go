package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/eaglebank/transactions/internal/command"
	"github.com/eaglebank/transactions/internal/config"
	"github.com/eaglebank/transactions/internal/handler"
	"github.com/eaglebank/transactions/internal/logger"
	"github.com/eaglebank/transactions/internal/projection"
	"github.com/eaglebank/transactions/internal/query"
	"github.com/eaglebank/transactions/internal/repository"
	"github.com/eaglebank/transactions/shared/events"
	"github.com/eaglebank/transactions/shared/middleware"
	"github.com/eaglebank/transactions/shared/models"
	redisClient "github.com/eaglebank/transactions/shared/redis"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.Logging, cfg.Primary.Env)

	// Database connection (write store + read fallback)
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	if err := repository.EnsureSchema(startupCtx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare database")
	}
	cancelStartup()

	// Redis connection (read model + event streams)
	redis, err := redisClient.NewClient(redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redis.Close()

	publisher := events.NewPublisher(redis.Client)

	// CQRS: write repos, read repos backed by the view cache
	viewTTL := time.Duration(cfg.Redis.ViewTTL) * time.Second
	txWriteRepo := repository.NewTransactionWriteRepository(db)
	txReadRepo := repository.NewTransactionReadRepository(db, redisClient.NewViewCache[models.TransactionView](redis.Client, viewTTL))
	taxWriteRepo := repository.NewTaxWriteRepository(db)
	taxReadRepo := repository.NewTaxReadRepository(db, redisClient.NewViewCache[models.TaxView](redis.Client, viewTTL))

	transactionHandler := handler.NewTransactionHandler(
		command.NewTransactionCommandService(txWriteRepo, publisher),
		query.NewTransactionQueryService(txReadRepo),
	)
	taxHandler := handler.NewTaxHandler(
		command.NewTaxCommandService(taxWriteRepo, taxReadRepo, publisher),
		query.NewTaxQueryService(taxReadRepo),
	)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"postgres": db.PingContext,
		"redis":    func(ctx context.Context) error { return redis.Ping(ctx).Err() },
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Projector: one consumer per stream
	projector := projection.NewViewProjector(txReadRepo, taxReadRepo)
	var wg sync.WaitGroup
	for stream, handle := range map[string]events.Handler{
		events.TransactionEventsStream: projector.HandleTransactionEvent,
		events.TaxEventsStream:         projector.HandleTaxEvent,
	} {
		subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
			Group:    cfg.Events.Group,
			Consumer: cfg.Events.Consumer,
			Stream:   stream,
			Handler:  handle,
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := subscriber.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("subscriber stopped")
			}
		}()
	}

	// Setup router
	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.LoggingMiddleware(log),
		middleware.ErrorHandler(cfg.Server.ExposeInternalErrors),
	)
	router.GET("/health", healthHandler.Health)
	handler.RegisterRoutes(router, transactionHandler, taxHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("transactions service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down http server")
	}
	wg.Wait()
}
