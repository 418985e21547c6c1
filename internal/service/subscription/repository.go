package subscription

import (
	"context"

	"github.com/ignite/newsletter/internal/domain"
)

// Repository defines the data access contract for subscriptions.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Insert writes one new pending_confirmation record with a fresh id and
	// the current UTC time. It is not idempotent: the same subscriber
	// inserted twice yields two records. Failures are *RepositoryError and
	// leave nothing behind.
	Insert(ctx context.Context, s domain.NewSubscriber) (*domain.Subscription, error)
}

// Notifier sends the confirmation email to a newly stored subscriber.
type Notifier interface {
	// SendConfirmation returns *NotificationError on any transport failure.
	SendConfirmation(ctx context.Context, s domain.NewSubscriber) error
}
