package domain

import "time"

// TransportType identifies the email transport used for delivery.
type TransportType string

const (
	TransportHTTP TransportType = "http"
	TransportSES  TransportType = "ses"
)

// EmailMessage is a fully rendered message ready for a transport.
type EmailMessage struct {
	To          string `json:"to"`
	Subject     string `json:"subject"`
	HTMLContent string `json:"html_content"`
	TextContent string `json:"text_content"`
}

// SendResult is returned by a transport after a successful delivery.
type SendResult struct {
	MessageID string        `json:"message_id"`
	Transport TransportType `json:"transport"`
	SentAt    time.Time     `json:"sent_at"`
}
