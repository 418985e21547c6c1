package subscription

import (
	"context"
	"errors"

	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/pkg/logger"
)

// Outcome is the terminal state of one subscription request.
type Outcome string

const (
	OutcomeAccepted           Outcome = "accepted"
	OutcomeRejectedInput      Outcome = "rejected_input"
	OutcomePersistenceFailed  Outcome = "persistence_failed"
	OutcomeNotificationFailed Outcome = "notification_failed"
)

// Form is the raw, untrusted subscription form.
type Form struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Service runs the parse, persist, notify pipeline. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	repo     Repository
	notifier Notifier
}

// NewService creates a subscription service.
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Subscribe processes one form submission. The returned error is
// *domain.ValidationError, *RepositoryError, or *NotificationError and
// matches the returned Outcome. On OutcomeNotificationFailed the stored
// record is left in pending_confirmation.
func (s *Service) Subscribe(ctx context.Context, form Form) (Outcome, error) {
	sub, err := domain.ParseNewSubscriber(form.Name, form.Email)
	if err != nil {
		logger.Info("Rejected subscription form", "subscriber_name", form.Name, "subscriber_email", form.Email, "error", err)
		return OutcomeRejectedInput, err
	}

	record, err := s.repo.Insert(ctx, sub)
	if err != nil {
		var rerr *RepositoryError
		if !errors.As(err, &rerr) {
			err = &RepositoryError{Op: "insert subscription", Err: err}
		}
		logger.Error("Failed to insert subscriber", "subscriber_email", sub.Email().String(), "error", err)
		return OutcomePersistenceFailed, err
	}
	logger.Info("Saved new subscriber", "subscription_id", record.ID, "subscriber_email", record.Email)

	if err := s.notifier.SendConfirmation(ctx, sub); err != nil {
		var nerr *NotificationError
		if !errors.As(err, &nerr) {
			err = &NotificationError{Recipient: sub.Email().String(), Err: err}
		}
		logger.Error("Failed to send confirmation email",
			"subscription_id", record.ID, "subscriber_email", sub.Email().String(),
			"recipient_domain", sub.Email().Domain(), "error", err)
		return OutcomeNotificationFailed, err
	}

	return OutcomeAccepted, nil
}
