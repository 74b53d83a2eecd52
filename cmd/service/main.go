package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "battery-delivery/internal/app"
	"battery-delivery/internal/handlers/kafka-consumer/table_changed"
	"battery-delivery/internal/handlers/rest/channel_delete"
	"battery-delivery/internal/handlers/rest/channel_patch"
	"battery-delivery/internal/handlers/rest/channel_post"
	"battery-delivery/internal/handlers/rest/channel_status_post"
	"battery-delivery/internal/handlers/rest/channels_get"
	"battery-delivery/internal/handlers/rest/deliveries_get"
	"battery-delivery/internal/handlers/rest/delivery_complete_post"
	"battery-delivery/internal/handlers/rest/delivery_patch"
	"battery-delivery/internal/handlers/rest/delivery_post"
	"battery-delivery/internal/handlers/rest/delivery_start_post"
	"battery-delivery/internal/handlers/rest/delivery_summary_get"
	"battery-delivery/internal/handlers/rest/healthcheck_head"
	"battery-delivery/internal/handlers/rest/ping_get"
	"battery-delivery/internal/handlers/rest/report_get"
	"battery-delivery/internal/handlers/rest/users_get"
	"battery-delivery/internal/pkg/changefeed"
	"battery-delivery/internal/pkg/config"
	"battery-delivery/internal/pkg/dotenv"
	"battery-delivery/internal/pkg/grpchealth"
	"battery-delivery/internal/pkg/kafka"
	metrics_system "battery-delivery/internal/pkg/metrics"
	"battery-delivery/internal/pkg/middlewares/cors"
	"battery-delivery/internal/pkg/middlewares/graceful_shutdown"
	"battery-delivery/internal/pkg/middlewares/metrics"
	"battery-delivery/internal/pkg/middlewares/rate_limiter"
	"battery-delivery/internal/pkg/middlewares/timeout"
	"battery-delivery/internal/pkg/postgres"
	"battery-delivery/pkg/logger"
	"battery-delivery/pkg/logger/zap_adapter"
	"battery-delivery/pkg/token_bucket"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting battery-delivery application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if cfg.Server.LogLevel != "" {
		err = zapLogger.SetLevel(cfg.Server.LogLevel)
		if err != nil {
			mainLog.Error("set log level", logger.NewField("error", err))
			return
		}
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		err = postgres.Migrate(ctx, log, pool)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	var publisher application.ChangePublisher = changefeed.NewNopPublisher()
	if cfg.KafkaEnabled() {
		producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			err := producer.Close()
			if err != nil {
				runLog.Error("failed to close kafka producer", logger.NewField("error", err))
			}
		}()
		publisher = producer
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// фоновые задачи живут до остановки серверов, первичная загрузка кэшей внутри InitializeApplication
	businessApp, err := application.InitializeApplication(ongoingCtx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ongoingCtx, 5*time.Second, func() metrics_system.PoolStats {
		stat := pool.Stat()
		return metrics_system.PoolStats{
			Acquired: stat.AcquiredConns(),
			Idle:     stat.IdleConns(),
			Total:    stat.TotalConns(),
		}
	})

	// канал изменений таблиц
	changeFeedErr, err := startChangeFeed(ongoingCtx, cfg, log, pool, businessApp.ChangeFeed)
	if err != nil {
		return fmt.Errorf("change feed: %w", err)
	}
	// канал изменений таблиц

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// grpc health сервер
	var healthServer *grpchealth.Server
	var healthServerErr chan error
	if cfg.Server.GRPCHealthPort != "" {
		healthServer = grpchealth.New(log, cfg.Server.GRPCHealthPort, pool)

		healthServerErr = make(chan error, 1)
		go func() {
			defer close(healthServerErr)
			if err := healthServer.Start(ongoingCtx); err != nil {
				healthServerErr <- err
			}
		}()
	}
	// grpc health сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-changeFeedErr:
		return fmt.Errorf("change feed: %w", err)
	case err := <-healthServerErr: // nil канал, если grpc health выключен
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if healthServer != nil {
		healthServer.Shutdown()
	}

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	businessApp.BackgroundWorkers.Wait()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

// startChangeFeed поднимает источник уведомлений об изменении таблиц: LISTEN в postgres
// или consumer Kafka с уникальной группой на инстанс. Оба пишут в один changefeed.Hub.
func startChangeFeed(ctx context.Context, cfg *config.Config, log logger.Logger, pool *pgxpool.Pool, hub *changefeed.Hub) (chan error, error) {
	feedErr := make(chan error, 1)

	if !cfg.KafkaEnabled() {
		listener := postgres.NewListener(log, pool, cfg.ChangeFeed.PgChannel, hub)
		go func() {
			defer close(feedErr)
			if err := listener.Start(ctx); err != nil {
				feedErr <- err
			}
		}()
		return feedErr, nil
	}

	handler := table_changed.New(log, hub, cfg.Kafka.Handlers.TableChanged.ProcessTimeout)

	consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, kafka.InstanceGroupID(cfg.Kafka.ConsumerGroup), handler)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}

	go func() {
		defer close(feedErr)
		defer func() {
			err := consumer.Close()
			if err != nil {
				log.Error("failed to close kafka consumer", logger.NewField("error", err))
			}
		}()

		err := consumer.Start(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
				log.Info("Kafka consumer stopped gracefully")
				return
			}
			feedErr <- err
		}
	}()
	return feedErr, nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	pool *pgxpool.Pool,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(cors.Middleware(cfg.CORSAllowedOrigins))
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	router.Handle("/delivery", delivery_post.New(log, app.ServiceDelivery)).Methods(http.MethodPost)
	router.Handle("/delivery/{id}", delivery_patch.New(log, app.ServiceDelivery)).Methods(http.MethodPatch)
	router.Handle("/delivery/{id}/start", delivery_start_post.New(log, app.ServiceDelivery)).Methods(http.MethodPost)
	router.Handle("/delivery/{id}/complete", delivery_complete_post.New(log, app.ServiceDelivery)).Methods(http.MethodPost)
	router.Handle("/delivery/{id}/summary", delivery_summary_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)

	router.Handle("/channels", channels_get.New(log, app.ServiceChannel)).Methods(http.MethodGet)
	router.Handle("/channel", channel_post.New(log, app.ServiceChannel)).Methods(http.MethodPost)
	router.Handle("/channel/{id}", channel_patch.New(log, app.ServiceChannel)).Methods(http.MethodPatch)
	router.Handle("/channel/{id}", channel_delete.New(log, app.ServiceChannel)).Methods(http.MethodDelete)
	router.Handle("/channel/{id}/{action:activate|deactivate|toggle}", channel_status_post.New(log, app.ServiceChannel)).Methods(http.MethodPost)

	router.Handle("/users", users_get.New(log, app.ServiceUser)).Methods(http.MethodGet)
	router.Handle("/report", report_get.New(log, app.ServiceReport)).Methods(http.MethodGet)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
