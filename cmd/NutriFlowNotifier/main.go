package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/config"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/worker"
	"github.com/Nazarious-ucu/nutriflow-landing/pkg/logger"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(logger.Options{
		FilePath:    "logs/notifier.log",
		ServiceName: "nutriflow_notifier",
		Level:       cfg.LogLevel,
		NoColor:     cfg.IsProduction(),
	})
	if err != nil {
		log.Panicf("failed to initialize logger: %v", err)
	}

	application := worker.New(*cfg, l)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		stop()
		log.Panic(err)
	}
}
