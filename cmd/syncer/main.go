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

	"github.com/MichalMitros/supplier-feed-sync/cmd/syncer/config"
	"github.com/MichalMitros/supplier-feed-sync/internal/api"
	"github.com/MichalMitros/supplier-feed-sync/internal/categorytree"
	"github.com/MichalMitros/supplier-feed-sync/internal/fetcher"
	"github.com/MichalMitros/supplier-feed-sync/internal/handler"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/cache"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/metrics"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/rabbitmq"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/storage"
	"github.com/MichalMitros/supplier-feed-sync/internal/syncer"
	"github.com/MichalMitros/supplier-feed-sync/pkg/v1/commander"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// UserAgent is user agent header value used when fetching feed files.
	UserAgent = "supplier-feed-sync/0.1.0"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't load configuration")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	redisClient, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Redis connection")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	store := storage.NewPostgres(
		pgDB,
		storage.WithBatchSize(cfg.Sync.BatchSize),
		storage.WithStaleRunAfter(cfg.Sync.StaleRunAfter),
	)
	editor := categorytree.NewEditor(store)

	var fetcherOps []fetcher.Option
	if cfg.Sync.FetchRate > 0 {
		fetcherOps = append(fetcherOps, fetcher.WithRateLimit(rate.NewLimiter(rate.Limit(cfg.Sync.FetchRate), 1)))
	}

	syn := syncer.NewSyncer(
		fetcher.NewFetcher(&http.Client{}, UserAgent, fetcherOps...),
		store,
		editor,
		cache.NewSelections(redisClient, cfg.Redis.SelectionTTL),
		syncer.WithLogger(&logger),
		syncer.WithMetrics(recorder),
		syncer.WithFetchTimeout(cfg.Sync.FetchTimeout),
		syncer.WithBatchFetchTimeout(cfg.Sync.BatchFetchTimeout),
		syncer.WithConcurrency(cfg.Sync.Concurrency),
	)

	apiOps := []api.Option{
		api.WithMetrics(recorder),
		api.WithPreviewTTL(cfg.Sync.PreviewTTL),
	}

	// quick sync commands are optional
	var (
		amqpConnection *amqp.Connection
		consumer       *rabbitmq.RabbitMQ
	)
	if cfg.RabbitMQ.URL != "" {
		amqpConnection, err = amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ connection")
		}

		consumer, err = rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Prefetch)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ channel")
		}

		if err := consumer.DeclareQueue(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't declare RabbitMQ queue")
		}

		publisher, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange, 0)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ channel")
		}
		apiOps = append(apiOps, api.WithCommander(
			commander.NewQuickSyncCommander(commander.NewRabbitMQSender(publisher, cfg.RabbitMQ.RoutingKey)),
		))

		han := handler.NewHandler(consumer, syn, &logger)

		// start consuming and handling messages
		if err := han.Start(ctx, cfg.RabbitMQ.Queue); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't start consuming")
		}
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewServer(syn, store, editor, &logger, apiOps...).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("HTTP server failed")
			cancel()
		}
	}()

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("supplier feed sync up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shutdown HTTP server")
	}

	// wait for consumer to finish
	if consumer != nil {
		<-consumer.Done()
	}

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := redisClient.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close Redis connection")
		}
	}()

	if amqpConnection != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := amqpConnection.Close(); err != nil {
				logger.Error().
					Err(err).
					Msg("can't close RabbitMQ connection")
			}
		}()
	}

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
