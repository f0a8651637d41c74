//go:build unit

package janitor_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/janitor"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
)

type fakePruner struct {
	calls atomic.Int32
}

func (p *fakePruner) Prune() int {
	p.calls.Add(1)
	return 2
}

type fakeCounter struct {
	n   int
	err error
}

func (c fakeCounter) Count(context.Context) (int, error) {
	return c.n, c.err
}

func TestRefreshSubscribers(t *testing.T) {
	m := metrics.NewMetrics("janitor_test", nil, "")
	j := janitor.New(nil, fakeCounter{n: 42}, zerolog.Nop(), "@every 1h", "@every 1h", m)

	j.RefreshSubscribers(context.Background())

	assert.Equal(t, 42.0, testutil.ToFloat64(m.SubscribersActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CronRuns.WithLabelValues("refresh_subscribers")))
}

func TestRefreshSubscribersError(t *testing.T) {
	m := metrics.NewMetrics("janitor_test", nil, "")
	m.SubscribersActive.Set(7)
	j := janitor.New(nil, fakeCounter{err: errors.New("db down")}, zerolog.Nop(), "@every 1h", "@every 1h", m)

	j.RefreshSubscribers(context.Background())

	assert.Equal(t, 7.0, testutil.ToFloat64(m.SubscribersActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TechnicalErrors.WithLabelValues("count_subscribers", "warning")))
}

func TestStartRunsJobs(t *testing.T) {
	m := metrics.NewMetrics("janitor_test", nil, "")
	p := &fakePruner{}
	j := janitor.New(p, fakeCounter{n: 3}, zerolog.Nop(), "@every 1s", "@every 1h", m)

	require.NoError(t, j.Start(context.Background()))
	defer j.Stop()

	// The gauge is filled at start, without waiting for the first tick.
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SubscribersActive))
	require.Eventually(t, func() bool { return p.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestStartInvalidSpec(t *testing.T) {
	m := metrics.NewMetrics("janitor_test", nil, "")
	j := janitor.New(&fakePruner{}, nil, zerolog.Nop(), "not a spec", "@every 1h", m)

	assert.Error(t, j.Start(context.Background()))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TechnicalErrors.WithLabelValues("cron_schedule_error", "critical")))
}
