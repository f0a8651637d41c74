//go:build unit

package notifier_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/notifier"
)

var breakerCfg = notifier.BreakerConfig{
	TimeInterval: 30 * time.Second,
	TimeTimeOut:  15 * time.Second,
	RepeatNumber: 3,
}

const breakerName = "waitlist-broker"

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) SendJoined(ctx context.Context, sub models.Subscriber) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockPublisher) SendLeft(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func TestLogWelcomer_FiresAfterDelay(t *testing.T) {
	m := metrics.NewMetrics("notifier_test", nil, "")
	w := notifier.NewLogWelcomer(10*time.Millisecond, zerolog.Nop(), m)

	w.Welcome(context.Background(), models.Subscriber{Email: "test@example.com"})

	counter := m.WelcomeNotices.WithLabelValues("log", "ok")
	assert.InDelta(t, 0, testutil.ToFloat64(counter), 0, "welcome is delayed")
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(counter) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestEventWelcomer_PublishesDetached(t *testing.T) {
	m := metrics.NewMetrics("notifier_test", nil, "")
	pub := &mockPublisher{}
	sub := models.Subscriber{ID: "id-1", Email: "test@example.com"}
	pub.On("SendJoined", mock.Anything, sub).Return(nil)
	pub.On("SendLeft", mock.Anything, "test@example.com").Return(errors.New("closed"))

	w := notifier.NewEventWelcomer(pub, time.Second, zerolog.Nop(), m)

	ctx, cancel := context.WithCancel(context.Background())
	w.Welcome(ctx, sub)
	cancel() // request finished; the publish must still happen

	w.Farewell(context.Background(), "test@example.com")

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(m.WelcomeNotices.WithLabelValues("rabbitmq", "ok")) == 1 &&
			testutil.ToFloat64(m.WelcomeNotices.WithLabelValues("rabbitmq", "error")) == 1
	}, time.Second, 5*time.Millisecond)
	pub.AssertExpectations(t)
}

func TestBreakerPublisher_Success(t *testing.T) {
	wrapped := &mockPublisher{}
	sub := models.Subscriber{Email: "a@example.com"}
	wrapped.On("SendJoined", mock.Anything, sub).Return(nil).Once()

	b := notifier.NewBreakerPublisher(breakerName, breakerCfg, wrapped)

	require.NoError(t, b.SendJoined(context.Background(), sub))
	assert.Equal(t, gobreaker.StateClosed, b.State())
	wrapped.AssertExpectations(t)
}

func TestBreakerPublisher_WrapsUnderlyingError(t *testing.T) {
	wrapped := &mockPublisher{}
	boom := errors.New("channel closed")
	wrapped.On("SendLeft", mock.Anything, "a@example.com").Return(boom).Once()

	b := notifier.NewBreakerPublisher(breakerName, breakerCfg, wrapped)

	err := b.SendLeft(context.Background(), "a@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, strings.HasPrefix(err.Error(), breakerName+" unavailable"))
}

func TestBreakerPublisher_OpensAfterConsecutiveFailures(t *testing.T) {
	wrapped := &mockPublisher{}
	sub := models.Subscriber{Email: "a@example.com"}
	wrapped.On("SendJoined", mock.Anything, sub).Return(errors.New("down"))

	b := notifier.NewBreakerPublisher(breakerName, breakerCfg, wrapped)

	for i := 0; i < int(breakerCfg.RepeatNumber); i++ {
		assert.Error(t, b.SendJoined(context.Background(), sub))
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	err := b.SendJoined(context.Background(), sub)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	wrapped.AssertNumberOfCalls(t, "SendJoined", int(breakerCfg.RepeatNumber))
}
