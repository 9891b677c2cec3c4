package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/renovalte/renovalte/internal/util"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type SendGridMailer struct {
	fromEmail string
	client    *sendgrid.Client
	isSandBox bool
	logger    *zap.SugaredLogger
}

func NewSendgrid(apiKey string, fromEmail string, isProduction bool, logger *zap.SugaredLogger) *SendGridMailer {
	// For unit test
	if logger == nil {
		logger = util.NewTestLogger()
	}

	client := sendgrid.NewSendClient(apiKey)

	return &SendGridMailer{
		fromEmail: fromEmail,
		client:    client,
		// Sandbox mode is only used to validate your request. The email will never be delivered while this feature is enabled!
		isSandBox: !isProduction,
		logger:    logger,
	}
}

// Send renders the named template's "subject" and "body" blocks with data and
// delivers the mail. The caller's context bounds the whole call, including
// retries.
func (m SendGridMailer) Send(ctx context.Context, templateFile, toUsername, toEmail string, data any) (int, error) {
	from := mail.NewEmail(FROM_NAME, m.fromEmail)
	to := mail.NewEmail(toUsername, toEmail)

	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		m.logger.Errorf("Error occurred during mail template parsing, error: %v", err)
		return -1, err
	}

	subject := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(subject, "subject", data)
	if err != nil {
		m.logger.Errorf("Error occurred during extracting subject from mail template, error: %v", err)
		return -1, err
	}

	body := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(body, "body", data)
	if err != nil {
		m.logger.Errorf("Error occurred during extracting body from mail template, error: %v", err)
		return -1, err
	}

	message := mail.NewSingleEmail(from, subject.String(), to, "", body.String())

	message.SetMailSettings(&mail.MailSettings{
		SandboxMode: &mail.Setting{
			Enable: &m.isSandBox,
		},
	})

	var retryErr error
	for i := 0; i < MAX_RETRY; i++ {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		response, err := m.client.SendWithContext(ctx, message)
		if err != nil {
			retryErr = err
			// exponential backoff
			select {
			case <-ctx.Done():
				return -1, ctx.Err()
			case <-time.After(time.Second * time.Duration(i+1)):
			}
			continue
		}

		return response.StatusCode, nil
	}

	m.logger.Errorf("Failed to send email after %d attempt, error: %v", MAX_RETRY, retryErr)

	return -1, fmt.Errorf("failed to send email after %d attempts: %v", MAX_RETRY, retryErr)
}
