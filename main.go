package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"lms-analytics-dashboard/config"
	"lms-analytics-dashboard/database"
	FiberApp "lms-analytics-dashboard/fiber"
	routeMongo "lms-analytics-dashboard/route"
)

func main() {

	// 1. Load configuration (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 2. Connect to MongoDB
	client, err := database.ConnectMongo(context.Background(), cfg.MongoURL)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// 3. Setup Fiber App
	app := FiberApp.SetupFiber(cfg)

	// 4. Setup Routes
	routeMongo.SetupMongoRoutes(app, client.Database(cfg.DBName), logger)

	// 5. Start server
	go func() {
		logger.Info().Str("addr", cfg.Address()).Msg("server running")
		if err := app.Listen(cfg.Address()); err != nil {
			logger.Error().Err(err).Msg("server stopped")
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
}
