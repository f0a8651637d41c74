package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const productionEnv = "production"

type Server struct {
	Host           string `envconfig:"SERVER_HOST" default:"localhost"`
	Port           string `envconfig:"SERVER_PORT" default:"8000"`
	ReadTimeout    int    `envconfig:"SERVER_TIMEOUT" default:"10"`
	GrpcHealthPort string `envconfig:"GRPC_HEALTH_PORT"`
}

type Db struct {
	Dialect string `envconfig:"DB_DIALECT" default:"sqlite"`
	// Source left empty runs the waitlist without persistence.
	Source string `envconfig:"DB_NAME" default:"nutriflow.db"`
}

// Client configures the signup widget's calls to the subscription API.
type Client struct {
	APIURL     string `envconfig:"API_URL" default:"http://localhost:8000"`
	Timeout    int    `envconfig:"API_TIMEOUT" default:"10"`
	SiteOrigin string `envconfig:"SITE_ORIGIN" default:"http://localhost:8000"`
}

type RateLimit struct {
	Requests    int           `envconfig:"RATE_LIMIT_REQUESTS" default:"3"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"5m"`
	CleanupSpec string        `envconfig:"RATE_LIMIT_CLEANUP" default:"@every 5m"`
	GaugeSpec   string        `envconfig:"SUBSCRIBER_GAUGE_SPEC" default:"@every 1m"`
}

type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RabbitMQ struct {
	URL string `envconfig:"RABBITMQ_URL"`
}

type Email struct {
	User     string `envconfig:"EMAIL_USER"`
	Host     string `envconfig:"EMAIL_HOST" default:"localhost"`
	Port     string `envconfig:"EMAIL_PORT" default:"1025"`
	Password string `envconfig:"EMAIL_PASSWORD"`
	From     string `envconfig:"EMAIL_FROM" default:"NutriFlow <bonjour@nutri-flow.me>"`
}

type Breaker struct {
	Interval time.Duration `envconfig:"BREAKER_INTERVAL" default:"30s"`
	Timeout  time.Duration `envconfig:"BREAKER_TIMEOUT" default:"15s"`
	Failures uint32        `envconfig:"BREAKER_FAILURES" default:"5"`
}

type Config struct {
	Environment    string        `envconfig:"APP_ENV" default:"development"`
	Version        string        `envconfig:"APP_VERSION" default:"1.0.0"`
	LogsPath       string        `envconfig:"LOGS_PATH" default:"logs/nutriflow.log"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"debug"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:8000"`
	WelcomeDelay   time.Duration `envconfig:"WELCOME_DELAY" default:"1s"`

	Server    Server
	DB        Db
	Client    Client
	RateLimit RateLimit
	Redis     Redis
	RabbitMQ  RabbitMQ
	Email     Email
	Breaker   Breaker
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) GrpcHealthAddress() string {
	if c.Server.GrpcHealthPort == "" {
		return ""
	}
	return c.Server.Host + ":" + c.Server.GrpcHealthPort
}

func (c *Config) IsProduction() bool {
	return c.Environment == productionEnv
}

// Persistent reports whether subscribers are stored.
func (c *Config) Persistent() bool {
	return c.DB.Source != ""
}

func (c *Client) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
