// Package mailxses implements mailx.Transport using AWS SES.
package mailxses

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/jmvelez/portfolio-api/pkg/mailx"
)

// Config holds the settings for creating an SES transport.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// SESAPI is the slice of the SES client the transport uses.
// Used for testing with mock implementations.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
	GetSendQuota(ctx context.Context, params *ses.GetSendQuotaInput, optFns ...func(*ses.Options)) (*ses.GetSendQuotaOutput, error)
}

// SESTransport sends mail through AWS SES.
type SESTransport struct {
	client SESAPI
}

// New creates a new SES transport. Static credentials are used when both
// key fields are set, otherwise the SDK's default chain applies.
func New(ctx context.Context, cfg Config) (*SESTransport, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, sesErrors.NewWithCause(ErrLoadConfig, err)
	}

	return &SESTransport{client: ses.NewFromConfig(awsCfg)}, nil
}

// NewWithClient creates an SES transport with a custom client, used for testing.
func NewWithClient(client SESAPI) *SESTransport {
	return &SESTransport{client: client}
}

// Name returns the transport name.
func (t *SESTransport) Name() string {
	return "ses"
}

// Verify checks that the configured credentials can reach the SES account.
func (t *SESTransport) Verify(ctx context.Context) error {
	if _, err := t.client.GetSendQuota(ctx, &ses.GetSendQuotaInput{}); err != nil {
		return sesErrors.NewWithCause(ErrVerifyFailed, err)
	}
	return nil
}

// Send delivers a single message via SES and returns the SES message id.
func (t *SESTransport) Send(ctx context.Context, msg mailx.Message) (string, error) {
	if err := mailx.ValidateMessage(msg); err != nil {
		return "", err
	}

	body := &types.Body{}
	if msg.TextBody != "" {
		body.Text = &types.Content{
			Data:    aws.String(msg.TextBody),
			Charset: aws.String("UTF-8"),
		}
	}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{
			Data:    aws.String(msg.HTMLBody),
			Charset: aws.String("UTF-8"),
		}
	}

	input := &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: body,
		},
	}

	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	out, err := t.client.SendEmail(ctx, input)
	if err != nil {
		return "", sesErrors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", msg.To).
			WithDetail("subject", msg.Subject)
	}

	return aws.ToString(out.MessageId), nil
}
