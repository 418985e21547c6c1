// Package sending defines the contract every email transport implements.
//
// The HTTP email API client (emailclient) and AWS SES (ses) both satisfy
// Sender, so the subscription service never knows which one is wired.
package sending

import (
	"context"

	"github.com/ignite/newsletter/internal/domain"
)

// Sender delivers a single email. Implementations must be safe for
// concurrent use and must not retry; a returned error means the message
// was not accepted by the provider.
type Sender interface {
	Send(ctx context.Context, msg *domain.EmailMessage) (*domain.SendResult, error)
}
