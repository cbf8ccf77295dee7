package quote

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"freight-quotes/internal/catalog"
	"freight-quotes/internal/logger"
	"freight-quotes/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NotifierInterface is the notification side of a submission. Its result is
// only logged; it never changes what the submitter is told.
type NotifierInterface interface {
	NotifySubmission(ctx context.Context, notice models.ShipmentNotice) error
}

// ServiceInterface defines the contract for the quote service.
type ServiceInterface interface {
	SubmitQuote(ctx context.Context, req models.CreateQuoteRequest, idempotencyKey string) (*models.QuoteRequest, bool, error)
	GetQuote(ctx context.Context, quoteID string) (*models.QuoteRequest, error)
	ListAllQuotes(ctx context.Context) ([]*models.QuoteRequest, models.StatusCounts, error)
	UpdateStatus(ctx context.Context, quoteID string, status string) (*models.QuoteRequest, error)
}

// Options tune the quote service.
type Options struct {
	// PersistTimeout bounds the insert of one submission.
	PersistTimeout time.Duration
	// NotifyTimeout bounds the notification phase, which outlives the
	// request that stored the quote.
	NotifyTimeout time.Duration
	// Notifier is called after a new record is stored. Nil disables it.
	Notifier NotifierInterface
}

// Service implements the quote service logic.
type Service struct {
	repo          RepositoryInterface
	catalog       *catalog.Catalog
	timeout       time.Duration
	notifyTimeout time.Duration
	notifier      NotifierInterface
	newID         func() string
}

// NewService creates a new quote service.
func NewService(repo RepositoryInterface, cat *catalog.Catalog, opts Options) *Service {
	timeout := opts.PersistTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	notifyTimeout := opts.NotifyTimeout
	if notifyTimeout <= 0 {
		notifyTimeout = 30 * time.Second
	}
	return &Service{
		repo:          repo,
		catalog:       cat,
		timeout:       timeout,
		notifyTimeout: notifyTimeout,
		notifier:      opts.Notifier,
		newID:         func() string { return uuid.NewString() },
	}
}

// SubmitQuote validates a submission and stores it as a pending quote
// request. created is false when the idempotency key was seen before and
// the earlier record is returned instead.
func (s *Service) SubmitQuote(ctx context.Context, req models.CreateQuoteRequest, idempotencyKey string) (*models.QuoteRequest, bool, error) {
	record, err := s.buildRecord(req)
	if err != nil {
		return nil, false, err
	}
	if key := strings.TrimSpace(idempotencyKey); key != "" {
		record.IdempotencyKey = &key
	}

	persistCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	saved, created, err := s.repo.Create(persistCtx, record)
	if err != nil {
		return nil, false, fmt.Errorf("service.SubmitQuote: %w", err)
	}

	if created && s.notifier != nil {
		s.notify(ctx, saved)
	}
	return saved, created, nil
}

// notify runs the notification phase. Failures are logged only; the record
// is already stored. The sends ignore cancellation of ctx and run under their
// own deadline.
func (s *Service) notify(ctx context.Context, q *models.QuoteRequest) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifySubmission(ctx, q.Notice()); err != nil {
		logger.Logger.WithError(err).WithFields(logrus.Fields{
			"quote_id": q.ID,
		}).Warn("quote stored but notification failed")
	}
}

// buildRecord turns a submission into a pending record, checking it against
// the reference tables.
func (s *Service) buildRecord(req models.CreateQuoteRequest) (*models.QuoteRequest, error) {
	email := strings.TrimSpace(req.Contact.Email)
	phone := strings.TrimSpace(req.Contact.Phone)
	if email == "" || phone == "" {
		return nil, models.NewValidationError("Email and phone are required")
	}
	if len(req.SelectedCarriers) == 0 {
		return nil, models.NewValidationError("At least one carrier must be selected")
	}
	if err := s.catalog.ValidateSelection(req.ShippingType, req.RouteType, req.Origin, req.Destination, req.SelectedCarriers); err != nil {
		return nil, err
	}
	if !s.catalog.ValidCargoType(req.CargoType) {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown cargo type %q", req.CargoType))
	}
	if !positive(req.Weight) {
		return nil, models.NewValidationError("Weight must be a positive number")
	}

	dims := []models.Number{req.Dimensions.Length, req.Dimensions.Width, req.Dimensions.Height}
	given := 0
	for _, d := range dims {
		if d.Set || d.Invalid {
			given++
			if !positive(d) {
				return nil, models.NewValidationError("Dimensions must be positive numbers")
			}
		}
	}
	if given != 0 && given != len(dims) {
		return nil, models.NewValidationError("Provide length, width and height together or leave all blank")
	}

	quantity := 1
	if req.Quantity.Set || req.Quantity.Invalid {
		n, ok := req.Quantity.Count()
		if !ok {
			return nil, models.NewValidationError("Quantity must be a whole number of at least 1")
		}
		quantity = n
	}

	q := &models.QuoteRequest{
		ID:                  s.newID(),
		UserName:            strings.TrimSpace(req.Contact.Name),
		UserEmail:           email,
		UserPhone:           phone,
		CompanyName:         optional(req.Contact.CompanyName),
		PickupIsland:        req.Origin,
		DeliveryIsland:      req.Destination,
		CargoType:           req.CargoType,
		WeightLbs:           req.Weight.Value,
		LengthInches:        req.Dimensions.Length.Ptr(),
		WidthInches:         req.Dimensions.Width.Ptr(),
		HeightInches:        req.Dimensions.Height.Ptr(),
		SelectedCarriers:    append([]string(nil), req.SelectedCarriers...),
		SpecialInstructions: optional(req.SpecialInstructions),
		Status:              models.StatusPending,
		Metadata: models.QuoteMetadata{
			ShippingType:           req.ShippingType,
			RouteType:              req.RouteType,
			Quantity:               quantity,
			FlexibleDates:          req.FlexibleDates,
			CarrierSpecificFields:  req.CarrierSpecificFields,
			SelectedServices:       req.SelectedServices,
			ShipmentDetails:        req.ShipmentDetails,
			NotificationPreference: req.Contact.NotificationPref,
		},
	}
	if !req.FlexibleDates {
		q.Metadata.ShipDate = req.ShipDate
	}
	return q, nil
}

// GetQuote retrieves a single quote request.
func (s *Service) GetQuote(ctx context.Context, quoteID string) (*models.QuoteRequest, error) {
	if _, err := uuid.Parse(quoteID); err != nil {
		return nil, models.ErrNotFound
	}
	q, err := s.repo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("service.GetQuote: %w", err)
	}
	return q, nil
}

// ListAllQuotes returns every quote request newest first with status counts.
func (s *Service) ListAllQuotes(ctx context.Context) ([]*models.QuoteRequest, models.StatusCounts, error) {
	quotes, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, models.StatusCounts{}, fmt.Errorf("service.ListAllQuotes: %w", err)
	}
	return quotes, CountStatuses(quotes), nil
}

// UpdateStatus moves a quote request to any of the four statuses.
func (s *Service) UpdateStatus(ctx context.Context, quoteID string, status string) (*models.QuoteRequest, error) {
	if !models.ValidStatus(status) {
		return nil, models.ErrInvalidStatus
	}
	if _, err := uuid.Parse(quoteID); err != nil {
		return nil, models.ErrNotFound
	}
	q, err := s.repo.UpdateStatus(ctx, quoteID, status)
	if err != nil {
		return nil, fmt.Errorf("service.UpdateStatus: %w", err)
	}
	return q, nil
}

// CountStatuses tallies quote requests per status.
func CountStatuses(quotes []*models.QuoteRequest) models.StatusCounts {
	c := models.StatusCounts{Total: len(quotes)}
	for _, q := range quotes {
		switch q.Status {
		case models.StatusPending:
			c.Pending++
		case models.StatusInProgress:
			c.InProgress++
		case models.StatusCompleted:
			c.Completed++
		case models.StatusCancelled:
			c.Cancelled++
		}
	}
	return c
}

func positive(n models.Number) bool {
	return n.Set && !n.Invalid && n.Value > 0 && !math.IsInf(n.Value, 0) && !math.IsNaN(n.Value)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
