// Package notify provides author.Notifier adapters. The SES notifier emails
// an ops address when an author is registered; Noop is wired when SES is not
// configured.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/ignite/author-registry/internal/domain"
)

// sesAPI is the slice of the SES client the notifier needs.
type sesAPI interface {
	SendEmail(ctx context.Context, input *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailNotifier sends author-created notifications via AWS SES.
type EmailNotifier struct {
	client sesAPI
	from   string
	to     string
}

// Config holds the SES notifier settings.
type Config struct {
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Region    string `yaml:"region"`
	From      string `yaml:"from"`
	To        string `yaml:"to"`
}

// Enabled reports whether enough settings are present to send.
func (c Config) Enabled() bool {
	return c.AccessKey != "" && c.SecretKey != "" && c.From != "" && c.To != ""
}

// NewEmailNotifier creates an SES-backed notifier.
func NewEmailNotifier(ctx context.Context, cfg Config) (*EmailNotifier, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &EmailNotifier{
		client: sesv2.NewFromConfig(awsCfg),
		from:   cfg.From,
		to:     cfg.To,
	}, nil
}

// AuthorCreated emails the configured recipient about the new author.
func (n *EmailNotifier) AuthorCreated(ctx context.Context, a *domain.Author) error {
	body := fmt.Sprintf("Author %s was registered with id %s.", a.Name, a.ID)
	if !a.Email.IsZero() {
		body += fmt.Sprintf(" Contact address: %s.", a.Email)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.from),
		Destination:      &types.Destination{ToAddresses: []string{n.to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(fmt.Sprintf("New author: %s", a.Name)),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("send author-created email: %w", err)
	}
	return nil
}

// Noop discards all notifications.
type Noop struct{}

// AuthorCreated does nothing.
func (Noop) AuthorCreated(context.Context, *domain.Author) error { return nil }
