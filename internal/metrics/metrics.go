package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	grpcProm "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
)

const divisor = 100

// Metrics defines all Prometheus metrics for the waitlist service.
type Metrics struct {
	registry *prometheus.Registry

	// RED (Rate, Errors, Duration) for HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestsInFlight prometheus.Gauge
	HTTPRequestDuration  *prometheus.HistogramVec

	// Business metrics
	SubscribersCreated  prometheus.Counter
	SubscribersCanceled prometheus.Counter
	SubscribersActive   prometheus.Gauge
	RateLimited         *prometheus.CounterVec // by route
	WidgetOutcomes      *prometheus.CounterVec // by form, outcome
	WidgetEvents        *prometheus.CounterVec // analytics hook
	WelcomeNotices      *prometheus.CounterVec // by welcomer, result

	// Cron job metrics
	CronRuns        *prometheus.CounterVec
	CronRunDuration *prometheus.HistogramVec

	// RabbitMQ publish metrics
	RabbitPublishTotal *prometheus.CounterVec // by routing_key, result

	// Consumer side, used by the notifier process
	ConsumerMessagesTotal *prometheus.CounterVec
	ConsumerErrorsTotal   *prometheus.CounterVec
	EmailSentTotal        *prometheus.CounterVec

	ServiceUptime prometheus.Gauge

	BusinessErrors  *prometheus.CounterVec
	TechnicalErrors *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics under the given namespace.
// db may be nil when the service runs without persistence.
func NewMetrics(namespace string, db *sql.DB, dbName string) *Metrics {
	registry := prometheus.NewRegistry()
	errorLabels := []string{"error_type", "severity"}
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests total",
			},
			[]string{"method", "endpoint", "status_class"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "In-flight HTTP requests",
			},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		SubscribersCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "subscribers_created_total",
				Help:      "Total addresses accepted on the waitlist",
			},
		),
		SubscribersCanceled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "subscribers_canceled_total",
				Help:      "Total unsubscribes",
			},
		),
		SubscribersActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "subscribers_active",
				Help:      "Active waitlist subscribers",
			},
		),
		RateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_requests_total",
				Help:      "Requests rejected by the rate limiter",
			},
			[]string{"endpoint"},
		),
		WidgetOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "widget_submissions_total",
				Help:      "Form submissions by outcome",
			},
			[]string{"form", "outcome"},
		),
		WidgetEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "widget_events_total",
				Help:      "Analytics events reported by the forms",
			},
			[]string{"action", "category", "label"},
		),
		WelcomeNotices: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "welcome_notifications_total",
				Help:      "Welcome notifications by result",
			},
			[]string{"welcomer", "result"},
		),

		CronRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cron_runs_total",
				Help:      "Cron job executions",
			},
			[]string{"job"},
		),
		CronRunDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cron_run_duration_seconds",
				Help:      "Duration of cron jobs",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"job"},
		),

		RabbitPublishTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rabbitmq_publish_total",
				Help:      "RabbitMQ messages published",
			},
			[]string{"routing_key", "result"},
		),

		ConsumerMessagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consumer_messages_total",
				Help:      "Total number of RabbitMQ messages consumed",
			},
			[]string{"event_type", "result"},
		),
		ConsumerErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consumer_errors_total",
				Help:      "Errors while handling consumed messages",
			},
			[]string{"event_type", "error_type"},
		),
		EmailSentTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "emails_sent_total",
				Help:      "Emails handed to the SMTP server",
			},
			[]string{"event_type", "result"},
		),

		ServiceUptime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "service_uptime_seconds",
				Help:      "Service start time in unix seconds",
			},
		),

		BusinessErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "business_errors_total",
				Help:      "Total business errors",
			},
			errorLabels,
		),
		TechnicalErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "technical_errors_total",
				Help:      "Total technical errors",
			},
			errorLabels,
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestsInFlight,
		m.HTTPRequestDuration,
		m.SubscribersCreated,
		m.SubscribersCanceled,
		m.SubscribersActive,
		m.RateLimited,
		m.WidgetOutcomes,
		m.WidgetEvents,
		m.WelcomeNotices,
		m.CronRuns,
		m.CronRunDuration,
		m.RabbitPublishTotal,
		m.ConsumerMessagesTotal,
		m.ConsumerErrorsTotal,
		m.EmailSentTotal,
		m.ServiceUptime,
		m.BusinessErrors,
		m.TechnicalErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		grpcProm.DefaultServerMetrics,
	)
	if db != nil {
		registry.MustRegister(collectors.NewDBStatsCollector(db, dbName))
	}

	m.ServiceUptime.SetToCurrentTime()

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// HTTPMiddleware instruments Gin HTTP handlers for RED metrics.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		c.Next()
		m.HTTPRequestsInFlight.Dec()

		dur := time.Since(start).Seconds()
		status := c.Writer.Status()
		statusClass := fmt.Sprintf("%dxx", status/divisor)

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, endpoint, statusClass).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(dur)
	}
}

// UnaryServerInterceptor returns a gRPC interceptor for server-side metrics.
func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return grpcProm.UnaryServerInterceptor
}

// StreamServerInterceptor returns a gRPC interceptor for server-side streaming metrics.
func (m *Metrics) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return grpcProm.StreamServerInterceptor
}

// CronJob wraps a function with cron metrics (runs + duration).
func (m *Metrics) CronJob(job string, fn func()) {
	start := time.Now()
	m.CronRuns.WithLabelValues(job).Inc()
	fn()
	m.CronRunDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())
}

// RecordRabbitPublish counts a publish attempt for routingKey as "ok" or "error".
func (m *Metrics) RecordRabbitPublish(routingKey string, err error) {
	m.RabbitPublishTotal.WithLabelValues(routingKey, result(err)).Inc()
}

func (m *Metrics) RecordWelcome(welcomer string, err error) {
	m.WelcomeNotices.WithLabelValues(welcomer, result(err)).Inc()
}

func (m *Metrics) RecordWidget(form, outcome string) {
	m.WidgetOutcomes.WithLabelValues(form, outcome).Inc()
}

// Track records a form analytics event.
func (m *Metrics) Track(_ context.Context, action, category, label string) {
	m.WidgetEvents.WithLabelValues(action, category, label).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
