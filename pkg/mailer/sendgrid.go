package mailer

import (
	"context"
	"fmt"
	netmail "net/mail"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridAPI interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridService sends email through the SendGrid v3 API.
type SendGridService struct {
	client sendgridAPI
}

func NewSendGridService(apiKey string) *SendGridService {
	return &SendGridService{client: sendgrid.NewSendClient(apiKey)}
}

func (s *SendGridService) Send(ctx context.Context, msg Message) error {
	if err := msg.check(); err != nil {
		return err
	}

	m := mail.NewV3Mail()
	m.SetFrom(parseAddress(msg.From))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(parseAddress(msg.To))
	for _, cc := range msg.CC {
		p.AddCCs(parseAddress(cc))
	}
	m.AddPersonalizations(p)
	if msg.ReplyTo != "" {
		m.SetReplyTo(parseAddress(msg.ReplyTo))
	}

	// SendGrid wants text/plain ahead of text/html.
	if msg.Text != "" {
		m.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(mail.NewContent("text/html", msg.HTML))
	}
	m.TrackingSettings = &mail.TrackingSettings{
		ClickTracking: &mail.ClickTrackingSetting{Enable: boolPtr(false)},
	}

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("mailer.SendGrid.Send to %s: %w", msg.To, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("mailer.SendGrid.Send to %s: status %d: %s", msg.To, resp.StatusCode, resp.Body)
	}
	return nil
}

// parseAddress splits "Name <addr>" for SendGrid. Anything that does not
// parse is passed through as a bare address.
func parseAddress(s string) *mail.Email {
	if a, err := netmail.ParseAddress(s); err == nil {
		return mail.NewEmail(a.Name, a.Address)
	}
	return mail.NewEmail("", s)
}

func boolPtr(b bool) *bool { return &b }
