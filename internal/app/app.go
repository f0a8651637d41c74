package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"github.com/wagslane/go-rabbitmq"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/nutriflow-landing/docs"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/config"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/handlers/pages"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/handlers/subscription"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/health"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/janitor"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/notifier"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/producers"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/ratelimit"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/repository/sqlite"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/security"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/services/logger"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/services/subscriptions"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/signup"
	"github.com/Nazarious-ucu/nutriflow-landing/web"
)

const (
	timeoutDuration = 5 * time.Second

	metricsNamespace = "nutriflow"
)

type limiterPruner interface {
	Prune() int
}

type subscriberCounter interface {
	Count(ctx context.Context) (int, error)
}

type welcomer interface {
	Welcome(ctx context.Context, sub models.Subscriber)
	Farewell(ctx context.Context, email string)
}

type ServiceContainer struct {
	SubscriptionService *subscriptions.Service
	Limiter             ratelimit.Limiter
	Janitor             *janitor.Janitor
	Health              *health.Server

	Redis      *redis.Client
	RabbitConn *rabbitmq.Conn
	Publisher  *rabbitmq.Publisher

	Router    *gin.Engine
	Srv       *http.Server
	Db        *sql.DB
	widgetLog *zap.Logger
	M         *metrics.Metrics
}

type App struct {
	cfg config.Config
	l   zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *App {
	logger = logger.With().Str("component", "App").Logger()
	return &App{cfg: cfg, l: logger}
}

// Start builds the service, serves HTTP until ctx is cancelled and then shuts down.
func (a *App) Start(ctx context.Context) error {
	c, err := a.Init(ctx)
	if err != nil {
		return err
	}

	if err := c.Janitor.Start(ctx); err != nil {
		a.Stop(c)
		return err
	}
	if c.Health != nil {
		if err := c.Health.Start(ctx); err != nil {
			a.Stop(c)
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.l.Info().Str("http_addr", a.cfg.ServerAddress()).Msg("HTTP server listening")
		if err := c.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		a.l.Info().Msg("Shutdown signal received")
	case err = <-errCh:
		if err != nil {
			a.l.Error().Err(err).Msg("HTTP server error")
		}
	}

	a.Stop(c)
	return err
}

func (a *App) Stop(c ServiceContainer) {
	a.l.Info().Msg("Stopping application")

	if c.Health != nil {
		c.Health.Stop()
	}

	if c.Janitor != nil {
		c.Janitor.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()
	if err := c.Srv.Shutdown(ctx); err != nil {
		a.l.Error().Err(err).Msg("HTTP shutdown error")
	} else {
		a.l.Info().Msg("HTTP server stopped")
	}

	if c.Publisher != nil {
		c.Publisher.Close()
	}
	if c.RabbitConn != nil {
		if err := c.RabbitConn.Close(); err != nil {
			a.l.Error().Err(err).Msg("RabbitMQ close error")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			a.l.Error().Err(err).Msg("Redis close error")
		}
	}

	if c.Db != nil {
		if err := c.Db.Close(); err != nil {
			a.l.Error().Err(err).Msg("Database close error")
		} else {
			a.l.Info().Msg("Database closed")
		}
	}

	_ = c.widgetLog.Sync()
	a.l.Info().Msg("Application shutdown complete")
}

// Init wires every component. Optional backends (SQLite, Redis, RabbitMQ, gRPC health)
// are only set up when configured.
func (a *App) Init(ctx context.Context) (ServiceContainer, error) {
	a.l.Info().
		Str("env", a.cfg.Environment).
		Bool("persistent", a.cfg.Persistent()).
		Bool("redis", a.cfg.Redis.Addr != "").
		Bool("rabbitmq", a.cfg.RabbitMQ.URL != "").
		Msg("Initializing application")

	c := ServiceContainer{}

	initCtx, cancel := context.WithTimeout(ctx, timeoutDuration)
	defer cancel()

	if a.cfg.Persistent() {
		db, err := sqlite.Open(initCtx, a.cfg.DB.Dialect, a.cfg.DB.Source)
		if err != nil {
			a.l.Error().Err(err).Msg("DB open error")
			return c, err
		}
		if err := sqlite.Migrate(initCtx, db, a.cfg.DB.Dialect); err != nil {
			a.l.Error().Err(err).Msg("DB migration error")
			_ = db.Close()
			return c, err
		}
		c.Db = db
	}

	c.M = metrics.NewMetrics(metricsNamespace, c.Db, a.cfg.DB.Source)

	w := a.setupWelcomer(&c)
	if c.Db != nil {
		repo := sqlite.NewSubscriberRepository(c.Db, a.l, c.M)
		c.SubscriptionService = subscriptions.NewService(repo, w, a.l, c.M)
	} else {
		c.SubscriptionService = subscriptions.NewService(nil, w, a.l, c.M)
	}

	memory := a.setupLimiter(initCtx, &c)
	c.Janitor = a.setupJanitor(memory, c.SubscriptionService, c.M)

	if addr := a.cfg.GrpcHealthAddress(); addr != "" {
		c.Health = health.New(addr, c.M, a.l)
	}

	c.widgetLog = newFileLogger(a.cfg.LogsPath)

	c.Router = a.setupRouter(c)
	c.Srv = &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     a.setupCORS(c.Router),
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}
	a.l.Info().Str("http_addr", a.cfg.ServerAddress()).Msg("HTTP server configured")

	return c, nil
}

func (a *App) setupRouter(c ServiceContainer) *gin.Engine {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), c.M.HTTPMiddleware(), security.Headers(a.cfg.IsProduction()))

	limit := ratelimit.Middleware(c.Limiter, security.ClientIP, a.l, c.M)
	subscription.NewHandler(c.SubscriptionService, a.cfg.Version, a.l).
		Register(router, limit, security.RequestHeaders(a.cfg.IsProduction()))

	httpClient := &http.Client{
		Timeout:   a.cfg.Client.RequestTimeout(),
		Transport: logger.NewRoundTripper(c.widgetLog, nil),
	}
	client := signup.NewClient(a.cfg.Client.APIURL, a.cfg.Client.SiteOrigin, httpClient, a.l)
	pages.NewHandler(client, c.M, c.M, a.cfg.Client.RequestTimeout(), a.l).Register(router)

	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))
	router.GET("/metrics", gin.WrapH(c.M.Handler()))

	return router
}

func (a *App) setupCORS(h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   a.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
	}).Handler(h)
}

// setupWelcomer publishes welcome events to RabbitMQ when a broker is configured and
// reachable; otherwise the welcome is only logged.
func (a *App) setupWelcomer(c *ServiceContainer) welcomer {
	logOnly := notifier.NewLogWelcomer(a.cfg.WelcomeDelay, a.l, c.M)
	if a.cfg.RabbitMQ.URL == "" {
		return logOnly
	}

	conn, err := a.setupConn()
	if err != nil {
		a.l.Error().Err(err).Msg("RabbitMQ connection error, falling back to log welcomer")
		return logOnly
	}
	publisher, err := a.setupPublisher(conn)
	if err != nil {
		a.l.Error().Err(err).Msg("RabbitMQ publisher error, falling back to log welcomer")
		_ = conn.Close()
		return logOnly
	}
	c.RabbitConn = conn
	c.Publisher = publisher

	producer := producers.NewProducer(publisher, a.l, c.M)
	breaker := notifier.NewBreakerPublisher("rabbitmq", notifier.BreakerConfig{
		TimeInterval: a.cfg.Breaker.Interval,
		TimeTimeOut:  a.cfg.Breaker.Timeout,
		RepeatNumber: a.cfg.Breaker.Failures,
	}, producer)

	a.l.Info().Msg("Welcome events published to RabbitMQ")
	return notifier.NewEventWelcomer(breaker, timeoutDuration, a.l, c.M)
}

// setupLimiter picks the Redis limiter when Redis answers, the in-memory one otherwise.
// The in-memory limiter is returned so the janitor can prune it.
func (a *App) setupLimiter(ctx context.Context, c *ServiceContainer) *ratelimit.MemoryLimiter {
	if a.cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			a.l.Error().Err(err).Str("addr", a.cfg.Redis.Addr).Msg("Redis unreachable, using in-memory rate limiter")
			_ = client.Close()
		} else {
			c.Redis = client
			c.Limiter = ratelimit.NewRedisLimiter(client, a.cfg.RateLimit.Requests, a.cfg.RateLimit.Window)
			a.l.Info().Str("addr", a.cfg.Redis.Addr).Msg("Redis rate limiter enabled")
			return nil
		}
	}

	memory := ratelimit.NewMemoryLimiter(a.cfg.RateLimit.Requests, a.cfg.RateLimit.Window)
	c.Limiter = memory
	return memory
}

func (a *App) setupJanitor(memory *ratelimit.MemoryLimiter, svc *subscriptions.Service, m *metrics.Metrics) *janitor.Janitor {
	var (
		p limiterPruner
		n subscriberCounter
	)
	if memory != nil {
		p = memory
	}
	if svc.Persistent() {
		n = svc
	}
	return janitor.New(p, n, a.l, a.cfg.RateLimit.CleanupSpec, a.cfg.RateLimit.GaugeSpec, m)
}
