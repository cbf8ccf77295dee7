package sms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeAPI struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeAPI) CreateMessage(p *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = p
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(808) 555-1234", "+18085551234"},
		{"808.555.1234", "+18085551234"},
		{"1-808-555-1234", "+18085551234"},
		{"+1 808 555 1234", "+18085551234"},
		{"+44 20 7946 0958", "+442079460958"},
		{"555-1234", "+5551234"},
		{"28085551234", "+28085551234"},
		{"", "+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeE164(tt.in), tt.in)
	}
}

func TestTwilioSend(t *testing.T) {
	api := &fakeAPI{}
	svc := &TwilioService{api: api, from: "+18085550000"}

	sid, err := svc.Send(context.Background(), "+18085551234", "Mahalo")
	require.NoError(t, err)
	assert.Equal(t, "SM123", sid)
	assert.Equal(t, "+18085551234", *api.params.To)
	assert.Equal(t, "+18085550000", *api.params.From)
	assert.Equal(t, "Mahalo", *api.params.Body)
}

func TestTwilioSendMapsErrorCodes(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{21211, ErrInvalidNumber},
		{21608, ErrUnverifiedNumber},
	}
	for _, tt := range tests {
		svc := &TwilioService{api: &fakeAPI{err: &twilioclient.TwilioRestError{Code: tt.code, Message: "nope", Status: 400}}}
		_, err := svc.Send(context.Background(), "+1", "x")
		assert.ErrorIs(t, err, tt.want)
	}

	svc := &TwilioService{api: &fakeAPI{err: &twilioclient.TwilioRestError{Code: 20003, Status: 401}}}
	_, err := svc.Send(context.Background(), "+1", "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidNumber))
}

func TestTwilioSendHonoursCancelledContext(t *testing.T) {
	api := &fakeAPI{}
	svc := &TwilioService{api: api}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Send(ctx, "+18085551234", "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, api.params, "nothing is sent")
}
