package subscription

import "fmt"

// RepositoryError wraps any storage failure while persisting a subscriber.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// NotificationError wraps a transport failure while sending the
// confirmation email.
type NotificationError struct {
	Recipient string
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("send confirmation email: %v", e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
