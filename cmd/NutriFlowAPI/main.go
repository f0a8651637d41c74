package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/app"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/config"
	"github.com/Nazarious-ucu/nutriflow-landing/pkg/logger"
)

// @title NutriFlow Waitlist API
// @version 1.0
// @description Waitlist subscriptions for the NutriFlow landing page
// @host localhost:8000
// @BasePath /
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(logger.Options{
		FilePath:    cfg.LogsPath,
		ServiceName: "nutriflow_api",
		Level:       cfg.LogLevel,
		NoColor:     cfg.IsProduction(),
	})
	if err != nil {
		log.Panicf("failed to initialize logger: %v", err)
	}

	application := app.New(*cfg, l)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		l.Error().Err(err).Msg("application stopped with error")
		stop()
		log.Panic(err)
	}
}
