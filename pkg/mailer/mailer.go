package mailer

import (
	"context"
	"errors"
)

// ServiceInterface defines the contract for an outbound email provider.
type ServiceInterface interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email. From may be a bare address or
// "Name <address>". CC and ReplyTo are optional.
type Message struct {
	From    string
	To      string
	CC      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

var errNoRecipient = errors.New("mailer: message has no recipient")

func (m Message) check() error {
	if m.To == "" {
		return errNoRecipient
	}
	return nil
}
