// Package ses delivers transactional email through AWS SES v2.
package ses

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/ignite/newsletter/internal/config"
	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/pkg/logger"
)

// API is the subset of *sesv2.Client used by Sender.
type API interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender sends emails via AWS SES using the SDK v2.
type Sender struct {
	client API
	from   domain.SubscriberEmail
}

// NewSender loads AWS configuration for cfg.SES and builds an SES sender.
// Static credentials are used when both keys are set; otherwise the default
// credential chain applies.
func NewSender(ctx context.Context, cfg config.EmailClientConfig, from domain.SubscriberEmail) (*Sender, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.SES.Region)}
	if cfg.SES.AccessKey != "" && cfg.SES.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SES.AccessKey, cfg.SES.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if t := cfg.Timeout(); t > 0 {
			o.HTTPClient = awshttp.NewBuildableClient().WithTimeout(t).WithTransportOptions(func(tr *http.Transport) {
				tr.ResponseHeaderTimeout = t
			})
		}
	})
	return NewSenderWithAPI(client, from), nil
}

// NewSenderWithAPI wraps an existing SES client.
func NewSenderWithAPI(client API, from domain.SubscriberEmail) *Sender {
	return &Sender{client: client, from: from}
}

// Send delivers a single email through AWS SES.
func (s *Sender) Send(ctx context.Context, msg *domain.EmailMessage) (*domain.SendResult, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from.String()),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTMLContent), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(msg.TextContent), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("ses send email: %w", err)
	}

	messageID := ""
	if result.MessageId != nil {
		messageID = *result.MessageId
	}
	logger.Debug("SES email sent", "recipient_email", msg.To, "message_id", messageID)

	return &domain.SendResult{
		MessageID: messageID,
		Transport: domain.TransportSES,
		SentAt:    time.Now().UTC(),
	}, nil
}
