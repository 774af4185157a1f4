// Package mailer wraps sendgrid for the transactional email the workflows
// and scheduler send. Construct one only when an API key is configured.
package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	templates "github.com/rentride/car-rental-api/templates/html"
)

// Client sends email through sendgrid.
type Client struct {
	apiKey    string
	fromEmail string
}

// New returns a sendgrid-backed mail client.
func New(apiKey, fromEmail string) *Client {
	return &Client{apiKey: apiKey, fromEmail: fromEmail}
}

// Send delivers a plain-text body wrapped in the branded HTML template.
func (c *Client) Send(_ context.Context, to, subject, body string) error {
	from := sgmail.NewEmail("RentRide", c.fromEmail)
	recipient := sgmail.NewEmail("", to)
	msg := sgmail.NewSingleEmail(from, subject, recipient, body, templates.RenderGenericEmail(subject, body))

	client := sendgrid.NewSendClient(c.apiKey)
	resp, err := client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
