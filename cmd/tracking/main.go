package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/antarride/tracking/internal/pkg/config"
	"github.com/antarride/tracking/internal/pkg/database"
	"github.com/antarride/tracking/internal/pkg/health"
	"github.com/antarride/tracking/internal/pkg/logger"
	"github.com/antarride/tracking/internal/pkg/middleware"
	natspkg "github.com/antarride/tracking/internal/pkg/nats"
	nsqpkg "github.com/antarride/tracking/internal/pkg/nsq"
	"github.com/antarride/tracking/internal/pkg/server"
	"github.com/antarride/tracking/services/tracking"
	"github.com/antarride/tracking/services/tracking/gateway"
	"github.com/antarride/tracking/services/tracking/handler"
	"github.com/antarride/tracking/services/tracking/repository"
	"github.com/antarride/tracking/services/tracking/usecase"
)

func main() {
	appName := "tracking-service"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize Postgres
	db, err := database.NewPostgresDB(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer db.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize NSQ producer
	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Initialize repositories
	locationRepo := repository.NewLocationRepository(redisClient, configs.Tracking)
	rideRepo := repository.NewRideRepository(configs, db)

	// Initialize gateways
	realtimeGW := gateway.NewRealtimeGW(natsClient)
	notificationGW := gateway.NewNotificationGW(nsqProducer)

	var directionsGW tracking.DirectionsGW
	if configs.Maps.APIKey != "" {
		directionsGW, err = gateway.NewDirectionsGW(configs.Maps.APIKey)
		if err != nil {
			logger.Warn("Directions provider disabled", logger.Err(err))
		}
	} else {
		logger.Warn("No maps API key configured, route estimates use straight-line fallback")
	}

	// Initialize usecase
	trackingUC := usecase.NewTrackingUC(configs, locationRepo, rideRepo, realtimeGW, notificationGW, directionsGW)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "postgres", Probe: func(ctx context.Context) error { return db.PingContext(ctx) }},
		health.Check{Name: "redis", Probe: redisClient.Ping},
		health.Check{Name: "nats", Probe: func(ctx context.Context) error {
			if !natsClient.IsConnected() {
				return errors.New("nats disconnected")
			}
			return nil
		}},
	)

	trackingHandler := handler.NewHandler(trackingUC, configs)
	trackingHandler.RegisterRoutes(e)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)

	logger.Info("Starting tracking service",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port))

	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped unexpectedly", logger.Err(err))
	}
}
