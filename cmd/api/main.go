package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/payments-api/docs"
	"github.com/tair/payments-api/internal/config"
	"github.com/tair/payments-api/internal/payment"
	paymentDomain "github.com/tair/payments-api/internal/payment/domain"
	"github.com/tair/payments-api/internal/payment/handler"
	"github.com/tair/payments-api/internal/user"
	userDomain "github.com/tair/payments-api/internal/user/domain"
	"github.com/tair/payments-api/kafka"
	"github.com/tair/payments-api/pkg/database"
	"github.com/tair/payments-api/pkg/health"
	"github.com/tair/payments-api/pkg/logger"
	"github.com/tair/payments-api/pkg/middleware"
	"github.com/tair/payments-api/pkg/tracing"
)

const healthPollInterval = 10 * time.Second

type stores struct {
	payments paymentDomain.PaymentRepository
	users    userDomain.UserRepository
	sqlDB    *sql.DB
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("payments-api", true)
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("store", cfg.Store.Driver).
		Msg("Starting payments API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.ServiceName, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
				}
			}()
		}
	}

	st, err := openStores(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	if st.sqlDB != nil {
		defer st.sqlDB.Close()
	}

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)

	var publisher *kafka.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Kafka publisher disabled")
		} else {
			defer publisher.Close()
		}

		consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, []string{kafka.TopicPaymentScheduled})
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Kafka consumer disabled")
		} else {
			consumer.RegisterHandler(kafka.EventTypePaymentScheduled,
				payment.NewPaymentScheduledHandler(payment.InitializeImportHandler(st.payments)))
			consumer.Start(ctx)
			defer consumer.Close()
		}
	}

	mwConfig := middleware.DefaultConfig(cfg.HTTP.AllowedOrigins)
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer redisClient.Close()
		mwConfig.RateLimiter = middleware.NewRateLimiter(redisClient, cfg.Redis.RequestsPerMinute, time.Minute)
	}

	// Untyped nil keeps the memory store always serving
	var pinger health.Pinger
	if st.sqlDB != nil {
		pinger = st.sqlDB
	}
	healthServer := health.NewServer(cfg.ServiceName, pinger)

	router := mux.NewRouter()
	middleware.Register(router, mwConfig)

	paymentHandler, err := payment.InitializeHandler(st.payments, metrics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize payment handler")
	}
	paymentHandler.RegisterRoutes(router)

	userHandler, err := user.InitializeHTTPHandler(st.users, metrics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}
	if publisher != nil {
		userHandler.WithPublisher(publisher)
	}
	userHandler.RegisterRoutes(router)

	router.Handle("/health", healthServer).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	handler.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      middleware.CORS(mwConfig)(router),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTP.Port).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	lis, err := net.Listen("tcp", ":"+cfg.GRPC.Port)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("port", cfg.GRPC.Port).Msg("Failed to listen for gRPC")
	}
	go func() {
		if err := healthServer.Serve(lis); err != nil {
			logger.Logger.Error().Err(err).Msg("gRPC server stopped")
		}
	}()
	go healthServer.Poll(ctx, healthPollInterval)

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server forced to shutdown")
	}
	healthServer.Stop()

	logger.Logger.Info().Msg("Server exited")
}

func openStores(cfg config.Config) (stores, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Logger.Warn().Msg("Using in-memory store; data is lost on restart")
		return stores{
			payments: payment.ProvideMemoryPaymentRepository(),
			users:    user.ProvideMemoryUserRepository(),
		}, nil
	}

	if cfg.Store.RunMigrations {
		if err := database.RunMigrations(cfg.Database); err != nil {
			return stores{}, err
		}
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		return stores{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return stores{}, err
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	return stores{
		payments: payment.ProvideGormPaymentRepository(db),
		users:    user.ProvideGormUserRepository(db),
		sqlDB:    sqlDB,
	}, nil
}
