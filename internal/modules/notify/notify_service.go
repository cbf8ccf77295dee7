package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"freight-quotes/internal/catalog"
	"freight-quotes/internal/logger"
	"freight-quotes/internal/models"
	"freight-quotes/pkg/mailer"
	"freight-quotes/pkg/sms"

	"github.com/sirupsen/logrus"
)

const customerSubject = "Your 808 Freight Quote Request - Confirmed!"

// ErrCustomerEmail marks a dispatch whose customer confirmation failed.
var ErrCustomerEmail = errors.New("customer confirmation email failed")

// ServiceInterface defines the contract for notification dispatch.
type ServiceInterface interface {
	DispatchEmails(ctx context.Context, notice models.ShipmentNotice) (DispatchResult, error)
	SendSMS(ctx context.Context, req models.SMSRequest) (string, error)
	NotifySubmission(ctx context.Context, notice models.ShipmentNotice) error
}

// DispatchResult counts what one email dispatch did.
type DispatchResult struct {
	CustomerSent   bool
	CarriersSent   int
	CarriersFailed int
	// Skipped lists selected carrier keys with no contact entry.
	Skipped []string
}

// Service sends customer confirmations, carrier forwards and texts.
type Service struct {
	catalog *catalog.Catalog
	mail    mailer.ServiceInterface
	sms     sms.ServiceInterface
	from    string
}

// NewService creates a notification service. A nil sender disables SMS.
func NewService(cat *catalog.Catalog, mail mailer.ServiceInterface, sender sms.ServiceInterface, from string) *Service {
	return &Service{catalog: cat, mail: mail, sms: sender, from: from}
}

// DispatchEmails sends the customer confirmation and then one email per
// selected carrier, in order. A carrier failure is logged and the loop goes
// on. When the customer confirmation fails the carriers are still tried and
// ErrCustomerEmail is returned at the end.
func (s *Service) DispatchEmails(ctx context.Context, n models.ShipmentNotice) (DispatchResult, error) {
	var res DispatchResult
	log := logger.Logger.WithFields(logrus.Fields{"quote_id": n.QuoteID, "customer": n.Email})
	view := newEmailView(s.catalog, n)

	customerErr := s.sendCustomer(ctx, n, view)
	if customerErr != nil {
		log.WithError(customerErr).Error("customer confirmation email failed")
	} else {
		res.CustomerSent = true
	}

	admin := s.catalog.AdminEmail()
	for _, key := range n.SelectedCarriers {
		to, ok := s.catalog.ResolveCarrierEmail(key, n.Origin, n.Destination)
		if !ok {
			log.WithField("carrier", key).Warn("unknown carrier, email skipped")
			res.Skipped = append(res.Skipped, key)
			continue
		}
		if err := s.sendCarrier(ctx, key, to, admin, n, view); err != nil {
			log.WithError(err).WithField("carrier", key).Error("carrier email failed")
			res.CarriersFailed++
			continue
		}
		res.CarriersSent++
	}

	log.WithFields(logrus.Fields{
		"carriers_sent":   res.CarriersSent,
		"carriers_failed": res.CarriersFailed,
	}).Info("quote emails dispatched")

	if customerErr != nil {
		return res, fmt.Errorf("%w: %v", ErrCustomerEmail, customerErr)
	}
	return res, nil
}

func (s *Service) sendCustomer(ctx context.Context, n models.ShipmentNotice, view emailView) error {
	html, text, err := render("customer", view)
	if err != nil {
		return fmt.Errorf("render customer email: %w", err)
	}
	return s.mail.Send(ctx, mailer.Message{
		From:    s.from,
		To:      n.Email,
		Subject: customerSubject,
		HTML:    html,
		Text:    text,
	})
}

func (s *Service) sendCarrier(ctx context.Context, key, to, admin string, n models.ShipmentNotice, view emailView) error {
	view.Carrier = newCarrierView(s.catalog, key, n)
	html, text, err := render("carrier", view)
	if err != nil {
		return fmt.Errorf("render carrier email: %w", err)
	}
	msg := mailer.Message{
		From:    s.from,
		To:      to,
		ReplyTo: n.Email,
		Subject: fmt.Sprintf("Quote Request: %s to %s", n.Origin, n.Destination),
		HTML:    html,
		Text:    text,
	}
	if !strings.EqualFold(to, admin) {
		msg.CC = []string{admin}
	}
	return s.mail.Send(ctx, msg)
}

// SendSMS formats one text for req.Type and sends it to the normalised number.
func (s *Service) SendSMS(ctx context.Context, req models.SMSRequest) (string, error) {
	if strings.TrimSpace(req.Phone) == "" {
		return "", models.NewValidationError("Phone number is required")
	}
	if s.sms == nil {
		return "", models.ErrSMSNotConfigured
	}

	to := sms.NormalizeE164(req.Phone)
	sid, err := s.sms.Send(ctx, to, s.smsBody(req))
	if err != nil {
		return "", fmt.Errorf("service.SendSMS: %w", err)
	}
	logger.Logger.WithFields(logrus.Fields{"to": to, "sid": sid}).Info("SMS sent")
	return sid, nil
}

func (s *Service) smsBody(req models.SMSRequest) string {
	switch req.Type {
	case models.SMSConfirmation:
		name := req.Name
		if name == "" {
			name = "Valued Customer"
		}
		carriers := "N/A"
		if len(req.SelectedCarriers) > 0 {
			carriers = strings.Join(s.catalog.DisplayNames(req.SelectedCarriers), ", ")
		}
		return fmt.Sprintf("🚢 808 Freight - Mahalo, %s!\n\n"+
			"Your quote request has been submitted!\n\n"+
			"📍 Route: %s → %s\n"+
			"📦 Carriers: %s\n\n"+
			"We'll notify you as quotes come in. Response times vary by carrier.\n\n"+
			"Questions? Reply to this text or email %s",
			name, req.Origin, req.Destination, carriers, s.catalog.AdminEmail())
	case models.SMSQuoteReceived:
		details := ""
		if req.QuoteDetails != "" {
			details = "Details: " + req.QuoteDetails + "\n\n"
		}
		return fmt.Sprintf("🎉 808 Freight Quote Alert!\n\n"+
			"%s has responded to your quote request.\n\n"+
			"%s"+
			"Check your email for full details, or reply CALL to request a callback.",
			req.CarrierName, details)
	}
	if req.Message != "" {
		return req.Message
	}
	return "808 Freight notification"
}

// NotifySubmission runs the whole notification phase for a stored quote:
// emails first, then an SMS confirmation when the customer asked for texts
// and SMS is configured.
func (s *Service) NotifySubmission(ctx context.Context, n models.ShipmentNotice) error {
	_, err := s.DispatchEmails(ctx, n)
	if n.WantsSMS() && s.sms != nil {
		_, smsErr := s.SendSMS(ctx, models.SMSRequest{
			Phone:            n.Phone,
			Name:             n.Name,
			Type:             models.SMSConfirmation,
			Origin:           n.Origin,
			Destination:      n.Destination,
			SelectedCarriers: n.SelectedCarriers,
		})
		err = errors.Join(err, smsErr)
	}
	return err
}
