package sms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Twilio error codes with their own user-facing answer.
const (
	codeInvalidNumber    = 21211
	codeUnverifiedNumber = 21608
)

var (
	ErrInvalidNumber    = errors.New("invalid phone number format")
	ErrUnverifiedNumber = errors.New("phone number not verified")
)

// ServiceInterface defines the contract for an outbound SMS provider.
type ServiceInterface interface {
	// Send texts body to an E.164 number and returns the provider message id.
	Send(ctx context.Context, to, body string) (string, error)
}

type messageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioService sends SMS through the Twilio REST API.
type TwilioService struct {
	api  messageAPI
	from string
}

func NewTwilioService(accountSID, authToken, from string) *TwilioService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioService{api: client.Api, from: from}
}

func (s *TwilioService) Send(ctx context.Context, to, body string) (string, error) {
	// The Twilio client takes no context; honour cancellation before the call.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			switch restErr.Code {
			case codeInvalidNumber:
				return "", fmt.Errorf("%w: %s", ErrInvalidNumber, restErr.Message)
			case codeUnverifiedNumber:
				return "", fmt.Errorf("%w: %s", ErrUnverifiedNumber, restErr.Message)
			}
		}
		return "", fmt.Errorf("sms.Twilio.Send: %w", err)
	}
	if msg == nil || msg.Sid == nil {
		return "", nil
	}
	return *msg.Sid, nil
}

// NormalizeE164 strips everything but digits, then treats 11 digits with a
// leading 1 and bare 10-digit numbers as North American. Anything else is
// prefixed with "+" unchanged.
func NormalizeE164(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch {
	case len(digits) == 11 && digits[0] == '1':
		return "+" + digits
	case len(digits) == 10:
		return "+1" + digits
	}
	return "+" + digits
}

