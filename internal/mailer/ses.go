package mailer

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates an SES-backed Sender.
func NewSESSender(ctx context.Context, region, fromAddress, fromName string) (Sender, error) {
	if region == "" || fromAddress == "" {
		return nil, fmt.Errorf("%w: EMAIL_REGION and EMAIL_FROM are required", ErrConfigMissing)
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) Send(ctx context.Context, recipient, subject, body string) (string, error) {
	if err := ValidateRecipient(recipient); err != nil {
		return "", err
	}

	htmlBody := textToHTML(body)
	from := s.fromAddress
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}

	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &body},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("SES SendEmail: %w", err)
	}

	var messageID string
	if out.MessageId != nil {
		messageID = *out.MessageId
	}
	return messageID, nil
}
