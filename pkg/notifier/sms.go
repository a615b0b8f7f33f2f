package notifier

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/umputun/newspager/pkg/config"
)

//go:generate moq -out mocks/messenger.go -pkg mocks -skip-ensure -fmt goimports . Messenger

// Messenger is the slice of the Twilio client used for delivery
type Messenger interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// SMS delivers digests as text messages to a single recipient
type SMS struct {
	messenger Messenger
	from      string
	to        string
}

// NewSMS creates a notifier backed by a real Twilio client
func NewSMS(cfg config.SMSConfig) *SMS {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &SMS{messenger: client.Api, from: cfg.From, to: cfg.To}
}

// Send delivers body to the configured recipient and returns the provider
// message SID. A failed send comes back as an error value for the caller to
// record, delivery is attempted once.
func (s *SMS) Send(ctx context.Context, body string) (string, error) {
	// the provider client has no context plumbing, honor cancellation here
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("send sms to %s: %w", s.to, err)
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(s.to)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.messenger.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("send sms to %s: %w", s.to, err)
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	lgr.Printf("[DEBUG] sms %s accepted by provider, %d chars", sid, len(body))
	return sid, nil
}
