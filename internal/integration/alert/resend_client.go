// Package alert delivers low-stock notifications queued by the sale operation.
package alert

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/gestao/backend/internal/application/adapter"
)

// ResendClient implements the adapter.AlertSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	recipient string
}

// NewResendClient creates a new Resend alert sender.
func NewResendClient(apiKey, fromName, fromEmail, recipient string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		recipient: recipient,
	}
}

// Send delivers a low-stock alert email to the configured recipient.
func (c *ResendClient) Send(ctx context.Context, job *adapter.AlertJob) error {
	subject := fmt.Sprintf("Estoque baixo: %s", job.ProductName)
	text := fmt.Sprintf(
		"O produto %q atingiu o estoque mínimo.\n\nQuantidade atual: %d\nEstoque mínimo: %d\n",
		job.ProductName, job.Quantity, job.MinStock,
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{c.recipient},
		Subject: subject,
		Text:    text,
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	return nil
}
