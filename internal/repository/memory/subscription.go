// Package memory provides in-process repository implementations for local
// development and tests. Data does not survive a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/newsletter/internal/domain"
)

// SubscriptionRepo is a concurrency-safe in-memory subscription.Repository.
type SubscriptionRepo struct {
	mu      sync.RWMutex
	records []domain.Subscription
}

// NewSubscriptionRepo creates an empty repository.
func NewSubscriptionRepo() *SubscriptionRepo { return &SubscriptionRepo{} }

func (r *SubscriptionRepo) Insert(_ context.Context, s domain.NewSubscriber) (*domain.Subscription, error) {
	rec := domain.Subscription{
		ID:           uuid.New().String(),
		Email:        s.Email().String(),
		Name:         s.Name().String(),
		SubscribedAt: time.Now().UTC(),
		Status:       domain.SubscriptionPendingConfirmation,
	}

	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
	return &rec, nil
}

// All returns a copy of every stored record in insert order.
func (r *SubscriptionRepo) All() []domain.Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Subscription, len(r.records))
	copy(out, r.records)
	return out
}

// Count returns the number of stored records.
func (r *SubscriptionRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
