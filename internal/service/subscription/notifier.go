package subscription

import (
	"context"
	"fmt"

	"github.com/osteele/liquid"

	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/service/sending"
)

// DefaultConfirmationLink is used when no link is configured. Links are not
// personalized per subscriber.
const DefaultConfirmationLink = "https://my-api.com/subscriptions/confirm"

// ConfirmationSubject is the subject line of every confirmation email.
const ConfirmationSubject = "Welcome!"

const (
	confirmationHTML = `Welcome to our newsletter!<br />Click <a href="{{ confirmation_link }}">here</a> to confirm your subscription.`
	confirmationText = "Welcome to our newsletter!\nVisit {{ confirmation_link }} to confirm your subscription."
)

var (
	confirmationHTMLTpl = mustParse(confirmationHTML)
	confirmationTextTpl = mustParse(confirmationText)
)

func mustParse(src string) *liquid.Template {
	tpl, err := liquid.NewEngine().ParseString(src)
	if err != nil {
		panic(fmt.Sprintf("parse confirmation template: %v", err))
	}
	return tpl
}

// ConfirmationNotifier renders the confirmation email and hands it to a
// sending.Sender.
type ConfirmationNotifier struct {
	sender sending.Sender
	link   string
}

// NewConfirmationNotifier creates a notifier that links every email to link.
// An empty link falls back to DefaultConfirmationLink.
func NewConfirmationNotifier(sender sending.Sender, link string) *ConfirmationNotifier {
	if link == "" {
		link = DefaultConfirmationLink
	}
	return &ConfirmationNotifier{sender: sender, link: link}
}

// SendConfirmation implements Notifier.
func (n *ConfirmationNotifier) SendConfirmation(ctx context.Context, s domain.NewSubscriber) error {
	msg, err := n.Message(s)
	if err != nil {
		return &NotificationError{Recipient: s.Email().String(), Err: err}
	}
	if _, err := n.sender.Send(ctx, msg); err != nil {
		return &NotificationError{Recipient: msg.To, Err: err}
	}
	return nil
}

// Message renders the confirmation email for s.
func (n *ConfirmationNotifier) Message(s domain.NewSubscriber) (*domain.EmailMessage, error) {
	bindings := liquid.Bindings{"confirmation_link": n.link}

	html, err := confirmationHTMLTpl.RenderString(bindings)
	if err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}
	text, err := confirmationTextTpl.RenderString(bindings)
	if err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}

	return &domain.EmailMessage{
		To:          s.Email().String(),
		Subject:     ConfirmationSubject,
		HTMLContent: html,
		TextContent: text,
	}, nil
}
