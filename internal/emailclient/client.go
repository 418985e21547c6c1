// Package emailclient sends transactional email through a Postmark-style
// HTTP API. Each Send is one request; failures are returned, never retried.
package emailclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ignite/newsletter/internal/config"
	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/pkg/logger"
)

// AuthHeader carries the server token on every request.
const AuthHeader = "X-Postmark-Server-Token"

// HTTPDoer is the interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is an email API client.
type Client struct {
	baseURL    string
	sender     domain.SubscriberEmail
	token      string
	httpClient HTTPDoer
}

// SendEmailRequest is the JSON body of POST /email.
type SendEmailRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// SendEmailResponse is the subset of the provider reply we read.
type SendEmailResponse struct {
	MessageID string `json:"MessageID"`
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
}

// NewClient creates a client from configuration. The sender address must
// already be validated.
func NewClient(cfg config.EmailClientConfig, sender domain.SubscriberEmail) *Client {
	return NewClientWithDoer(cfg.BaseURL, sender, cfg.AuthorizationToken, &http.Client{Timeout: cfg.Timeout()})
}

// NewClientWithDoer creates a client with an explicit HTTP transport.
func NewClientWithDoer(baseURL string, sender domain.SubscriberEmail, token string, doer HTTPDoer) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		sender:     sender,
		token:      token,
		httpClient: doer,
	}
}

// Send delivers msg. Any transport error or non-2xx status is an error.
func (c *Client) Send(ctx context.Context, msg *domain.EmailMessage) (*domain.SendResult, error) {
	body, err := json.Marshal(SendEmailRequest{
		From:     c.sender.String(),
		To:       msg.To,
		Subject:  msg.Subject,
		HtmlBody: msg.HTMLContent,
		TextBody: msg.TextContent,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(AuthHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var out SendEmailResponse
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &out); err != nil {
			logger.Warn("Email API returned an unreadable body", "status", resp.StatusCode, "error", err)
		}
	}

	logger.Debug("Email sent", "recipient_email", msg.To, "message_id", out.MessageID)
	return &domain.SendResult{
		MessageID: out.MessageID,
		Transport: domain.TransportHTTP,
		SentAt:    time.Now().UTC(),
	}, nil
}
