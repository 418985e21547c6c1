package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/pkg/logger"
	"github.com/ignite/newsletter/internal/service/subscription"
)

// SubscriptionRepo implements subscription.Repository against PostgreSQL.
type SubscriptionRepo struct{ db *sql.DB }

// NewSubscriptionRepo creates a Postgres-backed subscription repository.
func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo { return &SubscriptionRepo{db: db} }

// Insert writes a single row, so a failure leaves nothing behind.
func (r *SubscriptionRepo) Insert(ctx context.Context, s domain.NewSubscriber) (*domain.Subscription, error) {
	rec := &domain.Subscription{
		ID:           uuid.New().String(),
		Email:        s.Email().String(),
		Name:         s.Name().String(),
		SubscribedAt: time.Now().UTC(),
		Status:       domain.SubscriptionPendingConfirmation,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.ID, rec.Email, rec.Name, rec.SubscribedAt, string(rec.Status))
	if err != nil {
		logger.Error("Failed to execute query", "query", "insert subscription", "error", err)
		return nil, &subscription.RepositoryError{Op: "insert subscription", Err: err}
	}
	return rec, nil
}

// Ping reports whether the database is reachable.
func (r *SubscriptionRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
