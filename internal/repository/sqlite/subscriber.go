package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
)

const uniqueViolation = "UNIQUE constraint failed"

// SubscriberRepository stores waitlist subscribers with structured logging and metrics.
type SubscriberRepository struct {
	DB  *sql.DB
	log zerolog.Logger
	m   *metrics.Metrics
	now func() time.Time
}

func NewSubscriberRepository(
	db *sql.DB,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *SubscriberRepository {
	logger = logger.With().Str("component", "SubscriberRepository").Logger()
	return &SubscriberRepository{
		DB:  db,
		log: logger,
		m:   m,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create stores email as an active subscriber. An address that unsubscribed earlier
// is reactivated; an active one yields models.ErrSubscriberExists.
func (r *SubscriberRepository) Create(ctx context.Context, email string) (models.Subscriber, error) {
	start := time.Now()

	existing, err := r.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.Active():
		r.log.Warn().Ctx(ctx).Str("email", email).Msg("subscriber already exists, abort create")
		r.m.BusinessErrors.WithLabelValues("subscriber_exists", "warning").Inc()
		return models.Subscriber{}, models.ErrSubscriberExists
	case err == nil:
		return r.reactivate(ctx, existing)
	case !errors.Is(err, models.ErrSubscriberNotFound):
		return models.Subscriber{}, err
	}

	sub := models.Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: r.now(),
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO subscribers (id, email, created_at, unsubscribed_at) VALUES (?, ?, ?, NULL)`,
		sub.ID, sub.Email, sub.CreatedAt,
	)
	dur := time.Since(start)
	if err != nil {
		if strings.Contains(err.Error(), uniqueViolation) {
			r.m.BusinessErrors.WithLabelValues("subscriber_exists", "warning").Inc()
			return models.Subscriber{}, models.ErrSubscriberExists
		}
		r.log.Error().Err(err).Ctx(ctx).Dur("duration", dur).Msg("failed to insert subscriber")
		r.m.TechnicalErrors.WithLabelValues("db_insert_error", "critical").Inc()
		return models.Subscriber{}, err
	}

	r.log.Info().Ctx(ctx).
		Str("email", sub.Email).
		Str("id", sub.ID).
		Dur("duration", dur).
		Msg("subscriber created")
	return sub, nil
}

func (r *SubscriberRepository) reactivate(ctx context.Context, sub models.Subscriber) (models.Subscriber, error) {
	createdAt := r.now()
	_, err := r.DB.ExecContext(ctx,
		`UPDATE subscribers SET unsubscribed_at = NULL, created_at = ? WHERE id = ?`, createdAt, sub.ID,
	)
	if err != nil {
		r.log.Error().Err(err).Ctx(ctx).Str("id", sub.ID).Msg("failed to reactivate subscriber")
		r.m.TechnicalErrors.WithLabelValues("db_update_error", "critical").Inc()
		return models.Subscriber{}, err
	}

	sub.CreatedAt = createdAt
	sub.UnsubscribedAt = nil
	r.log.Info().Ctx(ctx).Str("email", sub.Email).Str("id", sub.ID).Msg("subscriber reactivated")
	return sub, nil
}

// GetByEmail returns models.ErrSubscriberNotFound for unknown addresses.
func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (models.Subscriber, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, email, created_at, unsubscribed_at FROM subscribers WHERE email = ?`, email,
	)
	sub, err := scanSubscriber(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subscriber{}, models.ErrSubscriberNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Ctx(ctx).Str("email", email).Msg("failed to query subscriber")
		r.m.TechnicalErrors.WithLabelValues("db_query_error", "critical").Inc()
		return models.Subscriber{}, err
	}
	return sub, nil
}

// Unsubscribe marks an active subscriber as unsubscribed. It reports false when
// the address is unknown or already unsubscribed.
func (r *SubscriberRepository) Unsubscribe(ctx context.Context, email string) (bool, error) {
	start := time.Now()
	r.log.Debug().Ctx(ctx).Str("email", email).Msg("unsubscribing")

	res, err := r.DB.ExecContext(ctx,
		`UPDATE subscribers SET unsubscribed_at = ? WHERE email = ? AND unsubscribed_at IS NULL`,
		r.now(), email,
	)
	dur := time.Since(start)
	if err != nil {
		r.log.Error().Err(err).Ctx(ctx).Str("email", email).Msg("failed to execute unsubscribe update")
		r.m.TechnicalErrors.WithLabelValues("db_update_error", "critical").Inc()
		return false, err
	}
	count, err := res.RowsAffected()
	if err != nil {
		r.log.Error().Err(err).Ctx(ctx).Str("email", email).Msg("failed to get rows affected for unsubscribe")
		r.m.TechnicalErrors.WithLabelValues("db_rows_error", "critical").Inc()
		return false, err
	}

	r.log.Info().Ctx(ctx).
		Str("email", email).
		Bool("updated", count > 0).
		Dur("duration", dur).
		Msg("unsubscribe completed")
	return count > 0, nil
}

// Count returns the number of active subscribers.
func (r *SubscriberRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM subscribers WHERE unsubscribed_at IS NULL`,
	).Scan(&n)
	if err != nil {
		r.log.Error().Err(err).Ctx(ctx).Msg("failed to count subscribers")
		r.m.TechnicalErrors.WithLabelValues("db_query_error", "critical").Inc()
		return 0, err
	}
	return n, nil
}

// List returns active subscribers, newest first.
func (r *SubscriberRepository) List(ctx context.Context, offset, limit int) ([]models.Subscriber, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, email, created_at, unsubscribed_at
		FROM subscribers
		WHERE unsubscribed_at IS NULL
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`, limit, offset,
	)
	if err != nil {
		r.log.Error().Err(err).Ctx(ctx).Msg("failed to list subscribers")
		r.m.TechnicalErrors.WithLabelValues("db_query_error", "critical").Inc()
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			r.log.Error().Err(err).Ctx(ctx).Msg("failed to close rows after list")
		}
	}()

	var subs []models.Subscriber
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			r.log.Error().Err(err).Ctx(ctx).Msg("failed to scan subscriber row")
			r.m.TechnicalErrors.WithLabelValues("db_scan_error", "critical").Inc()
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		r.m.TechnicalErrors.WithLabelValues("db_rows_error", "critical").Inc()
		return nil, err
	}

	r.log.Debug().Ctx(ctx).Int("count", len(subs)).Msg("listed subscribers")
	return subs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubscriber(s scanner) (models.Subscriber, error) {
	var (
		sub            models.Subscriber
		unsubscribedAt sql.NullTime
	)
	if err := s.Scan(&sub.ID, &sub.Email, &sub.CreatedAt, &unsubscribedAt); err != nil {
		return models.Subscriber{}, err
	}
	if unsubscribedAt.Valid {
		t := unsubscribedAt.Time
		sub.UnsubscribedAt = &t
	}
	return sub, nil
}
