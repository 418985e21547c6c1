package domain

import "time"

// SubscriptionStatus enumerates the lifecycle states of a subscription record.
type SubscriptionStatus string

const (
	// SubscriptionPendingConfirmation is set at insert time. Nothing in this
	// service moves a record out of it.
	SubscriptionPendingConfirmation SubscriptionStatus = "pending_confirmation"
)

// NewSubscriber is a subscriber whose name and email both passed validation.
// There is no way to hold a partially valid one.
type NewSubscriber struct {
	name  SubscriberName
	email SubscriberEmail
}

// ParseNewSubscriber builds a NewSubscriber from raw form fields. The name is
// checked first; if it fails the email is not looked at and the name error
// is returned.
func ParseNewSubscriber(name, email string) (NewSubscriber, error) {
	n, err := ParseSubscriberName(name)
	if err != nil {
		return NewSubscriber{}, err
	}
	e, err := ParseSubscriberEmail(email)
	if err != nil {
		return NewSubscriber{}, err
	}
	return NewSubscriber{name: n, email: e}, nil
}

// Name returns the validated name.
func (s NewSubscriber) Name() SubscriberName { return s.name }

// Email returns the validated email.
func (s NewSubscriber) Email() SubscriberEmail { return s.email }

// Subscription is one persisted row of the subscriptions table.
type Subscription struct {
	ID           string             `json:"id" db:"id"`
	Email        string             `json:"email" db:"email"`
	Name         string             `json:"name" db:"name"`
	SubscribedAt time.Time          `json:"subscribed_at" db:"subscribed_at"`
	Status       SubscriptionStatus `json:"status" db:"status"`
}
