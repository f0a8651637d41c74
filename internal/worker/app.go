package worker

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/config"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/consumer"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/emailer"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/services/email"
)

const (
	metricsNamespace = "nutriflow_notifier"
	metricsPort      = "9101"
	timeoutDuration  = 5 * time.Second
)

// App consumes waitlist events and sends the matching emails.
type App struct {
	cfg config.Config
	log zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *App {
	logger = logger.With().Str("component", "NotifierApp").Logger()
	return &App{
		cfg: cfg,
		log: logger,
	}
}

func (a *App) Start(ctx context.Context) error {
	if a.cfg.RabbitMQ.URL == "" {
		return errors.New("RABBITMQ_URL is required by the notifier")
	}
	a.log.Info().Msg("Starting application")

	m := metrics.NewMetrics(metricsNamespace, nil, "")

	smtpService := emailer.NewSMTPService(a.cfg.Email, a.log)
	a.log.Info().Str("host", a.cfg.Email.Host).Str("port", a.cfg.Email.Port).Msg("SMTP service initialized")

	emailService, err := email.NewService(smtpService, a.cfg.Client.SiteOrigin)
	if err != nil {
		a.log.Error().Err(err).Msg("Failed to load email templates")
		return err
	}

	rabbitConn, err := a.setupConn()
	if err != nil {
		return err
	}
	defer func() {
		if err := rabbitConn.Close(); err != nil {
			a.log.Error().Err(err).Msg("RabbitMQ close error")
		}
	}()

	joinedConsumer, err := a.setupJoinedConsumer(rabbitConn)
	if err != nil {
		a.log.Error().Err(err).Msg("Failed to setup joined event consumer")
		return err
	}
	defer joinedConsumer.Close()

	leftConsumer, err := a.setupLeftConsumer(rabbitConn)
	if err != nil {
		a.log.Error().Err(err).Msg("Failed to setup left event consumer")
		return err
	}
	defer leftConsumer.Close()

	handler := consumer.NewConsumer(emailService, a.log, m)
	go func() {
		if err := joinedConsumer.Run(handler.ReceiveJoined); err != nil {
			a.log.Error().Err(err).Msg("joined consumer stopped")
		}
	}()
	go func() {
		if err := leftConsumer.Run(handler.ReceiveLeft); err != nil {
			a.log.Error().Err(err).Msg("left consumer stopped")
		}
	}()

	metricsSrv := &http.Server{
		Addr:              a.cfg.Server.Host + ":" + metricsPort,
		Handler:           m.Handler(),
		ReadHeaderTimeout: timeoutDuration,
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error().Err(err).Msg("metrics server error")
		}
	}()

	a.log.Info().Msg("Application started successfully")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("metrics server shutdown error")
	}

	a.log.Info().Msg("Application shutdown successfully")
	return nil
}
