// internal/email/sender/ses.go
package sender

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"salt-notifier/internal/common/logger"
)

// SESService abstracts the SES client for testing.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender delivers mail through Amazon SES. It is the alternate backend
// for deployments that route school mail through AWS instead of Resend.
type SESSender struct {
	client SESService
	logger logger.Logger
}

func NewSESSender(client SESService, log logger.Logger) *SESSender {
	return &SESSender{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "ses"}),
	}
}

func (s *SESSender) Send(ctx context.Context, msg Message) (*Result, error) {
	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML)},
			},
		},
		Source: aws.String(msg.From),
	})
	if err != nil {
		return nil, fmt.Errorf("ses send: %w", err)
	}

	result := &Result{OK: true}
	if out.MessageId != nil {
		result.ID = *out.MessageId
	}
	return result, nil
}
