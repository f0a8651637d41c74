package janitor

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
)

const (
	timeoutDuration = 30 * time.Second

	jobPruneLimiter = "prune_limiter"
	jobSubscribers  = "refresh_subscribers"
)

type pruner interface {
	Prune() int
}

type subscriberCounter interface {
	Count(ctx context.Context) (int, error)
}

// Janitor runs the periodic housekeeping of the API process.
// Either dependency may be nil, in which case its job is not scheduled.
type Janitor struct {
	limiter     pruner
	subscribers subscriberCounter
	logger      zerolog.Logger
	cron        *cron.Cron
	cancel      context.CancelFunc
	m           *metrics.Metrics
	cleanupSpec string
	gaugeSpec   string
}

func New(
	limiter pruner,
	subscribers subscriberCounter,
	logger zerolog.Logger,
	cleanupSpec, gaugeSpec string,
	m *metrics.Metrics,
) *Janitor {
	logger = logger.With().Str("component", "Janitor").Logger()
	return &Janitor{
		limiter:     limiter,
		subscribers: subscribers,
		logger:      logger,
		cron:        cron.New(),
		cleanupSpec: cleanupSpec,
		gaugeSpec:   gaugeSpec,
		m:           m,
	}
}

// Start schedules the jobs and runs the subscriber gauge refresh once right away.
func (j *Janitor) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	if j.limiter != nil {
		if _, err := j.cron.AddFunc(j.cleanupSpec, j.PruneLimiter); err != nil {
			j.logger.Error().Err(err).Str("spec", j.cleanupSpec).Msg("failed to schedule limiter cleanup")
			j.m.TechnicalErrors.WithLabelValues("cron_schedule_error", "critical").Inc()
			cancel()
			return err
		}
	}

	if j.subscribers != nil {
		if _, err := j.cron.AddFunc(j.gaugeSpec, func() { j.RefreshSubscribers(ctx) }); err != nil {
			j.logger.Error().Err(err).Str("spec", j.gaugeSpec).Msg("failed to schedule subscriber gauge")
			j.m.TechnicalErrors.WithLabelValues("cron_schedule_error", "critical").Inc()
			cancel()
			return err
		}
		j.RefreshSubscribers(ctx)
	}

	j.cron.Start()
	j.logger.Info().Int("jobs", len(j.cron.Entries())).Msg("Janitor started")
	return nil
}

// Stop cancels the running jobs and waits for them to return.
func (j *Janitor) Stop() {
	if j.cancel != nil {
		j.cancel()
	}
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("Janitor stopped")
}

// PruneLimiter drops idle rate limiter entries.
func (j *Janitor) PruneLimiter() {
	j.m.CronJob(jobPruneLimiter, func() {
		removed := j.limiter.Prune()
		j.logger.Debug().Int("removed", removed).Msg("pruned idle limiter entries")
	})
}

// RefreshSubscribers sets the active subscribers gauge from the store.
func (j *Janitor) RefreshSubscribers(ctx context.Context) {
	j.m.CronJob(jobSubscribers, func() {
		ctx, cancel := context.WithTimeout(ctx, timeoutDuration)
		defer cancel()

		n, err := j.subscribers.Count(ctx)
		if err != nil {
			j.logger.Error().Err(err).Msg("failed to count subscribers")
			j.m.TechnicalErrors.WithLabelValues("count_subscribers", "warning").Inc()
			return
		}
		j.m.SubscribersActive.Set(float64(n))
	})
}
