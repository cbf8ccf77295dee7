package quote

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"
	"time"

	"freight-quotes/internal/catalog"
	"freight-quotes/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// fakeRepo: in-memory quote_requests table
// ----------------------------------------------------------------------------
type fakeRepo struct {
	quotes  map[string]*models.QuoteRequest
	byKey   map[string]string
	clock   time.Time
	failErr error
	// deadline records whether Create saw a context deadline.
	deadline bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		quotes: make(map[string]*models.QuoteRequest),
		byKey:  make(map[string]string),
		clock:  time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) Create(ctx context.Context, q *models.QuoteRequest) (*models.QuoteRequest, bool, error) {
	_, f.deadline = ctx.Deadline()
	if f.failErr != nil {
		return nil, false, f.failErr
	}
	if q.IdempotencyKey != nil {
		if id, ok := f.byKey[*q.IdempotencyKey]; ok {
			cp := *f.quotes[id]
			return &cp, false, nil
		}
		f.byKey[*q.IdempotencyKey] = q.ID
	}
	f.clock = f.clock.Add(time.Minute)
	cp := *q
	cp.CreatedAt, cp.UpdatedAt = f.clock, f.clock
	f.quotes[q.ID] = &cp
	out := cp
	return &out, true, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*models.QuoteRequest, error) {
	q, ok := f.quotes[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeRepo) FindByIdempotencyKey(ctx context.Context, key string) (*models.QuoteRequest, error) {
	id, ok := f.byKey[key]
	if !ok {
		return nil, models.ErrNotFound
	}
	return f.FindByID(ctx, id)
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]*models.QuoteRequest, error) {
	out := make([]*models.QuoteRequest, 0, len(f.quotes))
	for _, q := range f.quotes {
		cp := *q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status string) (*models.QuoteRequest, error) {
	q, ok := f.quotes[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	f.clock = f.clock.Add(time.Minute)
	q.Status = status
	q.UpdatedAt = f.clock
	cp := *q
	return &cp, nil
}

// fakeNotifier records every notice and fails when err is set.
type fakeNotifier struct {
	notices []models.ShipmentNotice
	err     error
	// ctxErr and deadline record the context each call saw.
	ctxErr   error
	deadline bool
}

func (n *fakeNotifier) NotifySubmission(ctx context.Context, notice models.ShipmentNotice) error {
	n.notices = append(n.notices, notice)
	n.ctxErr = ctx.Err()
	_, n.deadline = ctx.Deadline()
	return n.err
}

// hangupRepo cancels the request context once the insert has gone through,
// the way a client timing out after the write would.
type hangupRepo struct {
	*fakeRepo
	cancel context.CancelFunc
}

func (r *hangupRepo) Create(ctx context.Context, q *models.QuoteRequest) (*models.QuoteRequest, bool, error) {
	saved, created, err := r.fakeRepo.Create(ctx, q)
	r.cancel()
	return saved, created, err
}

func newTestService(repo *fakeRepo, n NotifierInterface) *Service {
	svc := NewService(repo, catalog.New("admin@808freight.com"), Options{PersistTimeout: time.Second, Notifier: n})
	seq := 0
	svc.newID = func() string {
		seq++
		return "5f0c2a9e-0000-4000-8000-00000000000" + strconv.Itoa(seq)
	}
	return svc
}

func validRequest() models.CreateQuoteRequest {
	return models.CreateQuoteRequest{
		ShippingType:     models.ShippingOcean,
		RouteType:        models.RouteInterIsland,
		Origin:           "Honolulu, HI (Honolulu Harbor)",
		Destination:      "Hilo, HI (Hilo Harbor)",
		SelectedCarriers: []string{"youngBrothers"},
		CargoType:        "general",
		Weight:           models.NewNumber(500),
		Contact: models.Contact{
			Name:  "Kai",
			Email: "kai@example.com",
			Phone: "808-555-1234",
		},
	}
}

func TestSubmitQuoteStoresPendingRecord(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	q, created, err := svc.SubmitQuote(context.Background(), validRequest(), "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.StatusPending, q.Status)
	assert.Equal(t, 500.0, q.WeightLbs)
	assert.Equal(t, 1, q.Metadata.Quantity, "quantity defaults to 1")
	assert.Equal(t, models.ShippingOcean, q.Metadata.ShippingType)
	assert.Nil(t, q.LengthInches)
	assert.Nil(t, q.CompanyName)
	assert.True(t, repo.deadline, "insert runs under a timeout")

	require.Len(t, notifier.notices, 1)
	assert.Equal(t, q.ID, notifier.notices[0].QuoteID)
	assert.Equal(t, "Hilo, HI (Hilo Harbor)", notifier.notices[0].Destination)
}

func TestSubmitQuoteValidationOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateQuoteRequest)
		want   string
	}{
		{"missing email", func(r *models.CreateQuoteRequest) { r.Contact.Email = "" }, "Email and phone are required"},
		{"blank phone", func(r *models.CreateQuoteRequest) { r.Contact.Phone = "  " }, "Email and phone are required"},
		{"contact checked before carriers", func(r *models.CreateQuoteRequest) {
			r.Contact.Email = ""
			r.SelectedCarriers = nil
		}, "Email and phone are required"},
		{"no carriers", func(r *models.CreateQuoteRequest) { r.SelectedCarriers = nil }, "At least one carrier must be selected"},
		{"zero weight", func(r *models.CreateQuoteRequest) { r.Weight = models.NewNumber(0) }, "Weight must be a positive number"},
		{"missing weight", func(r *models.CreateQuoteRequest) { r.Weight = models.Number{} }, "Weight must be a positive number"},
		{"garbage weight", func(r *models.CreateQuoteRequest) { r.Weight = models.Number{Invalid: true} }, "Weight must be a positive number"},
		{"partial dimensions", func(r *models.CreateQuoteRequest) {
			r.Dimensions.Length = models.NewNumber(10)
		}, "Provide length, width and height together or leave all blank"},
		{"negative dimension", func(r *models.CreateQuoteRequest) {
			r.Dimensions = models.Dimensions{Length: models.NewNumber(10), Width: models.NewNumber(-1), Height: models.NewNumber(3)}
		}, "Dimensions must be positive numbers"},
		{"fractional quantity", func(r *models.CreateQuoteRequest) { r.Quantity = models.NewNumber(1.5) }, "Quantity must be a whole number of at least 1"},
		{"zero quantity", func(r *models.CreateQuoteRequest) { r.Quantity = models.NewNumber(0) }, "Quantity must be a whole number of at least 1"},
		{"huge quantity", func(r *models.CreateQuoteRequest) { r.Quantity = models.NewNumber(1e20) }, "Quantity must be a whole number of at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo, nil)
			req := validRequest()
			tt.mutate(&req)

			_, _, err := svc.SubmitQuote(context.Background(), req, "")
			ve, ok := models.IsValidationError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.want, ve.Message)
			assert.Empty(t, repo.quotes, "nothing is stored")
		})
	}
}

func TestSubmitQuoteRejectsUnknownTableValues(t *testing.T) {
	for name, mutate := range map[string]func(*models.CreateQuoteRequest){
		"carrier":       func(r *models.CreateQuoteRequest) { r.SelectedCarriers = []string{"acme"} },
		"air carrier":   func(r *models.CreateQuoteRequest) { r.SelectedCarriers = []string{"fedex"} },
		"origin":        func(r *models.CreateQuoteRequest) { r.Origin = "Tokyo" },
		"route type":    func(r *models.CreateQuoteRequest) { r.RouteType = "moon" },
		"cargo type":    func(r *models.CreateQuoteRequest) { r.CargoType = "plutonium" },
		"shipping type": func(r *models.CreateQuoteRequest) { r.ShippingType = "rail" },
	} {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(newFakeRepo(), nil)
			req := validRequest()
			mutate(&req)
			_, _, err := svc.SubmitQuote(context.Background(), req, "")
			_, ok := models.IsValidationError(err)
			assert.True(t, ok, "got %v", err)
		})
	}
}

func TestSubmitQuoteKeepsDimensionsAndMetadata(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)
	req := validRequest()
	req.Dimensions = models.Dimensions{Length: models.NewNumber(48), Width: models.NewNumber(40), Height: models.NewNumber(36)}
	req.Quantity = models.NewNumber(3)
	req.ShipDate = "2026-11-02"
	req.Contact.CompanyName = "Island Movers"
	req.Contact.NotificationPref = models.NotifyBoth
	req.CarrierSpecificFields = map[string]map[string]string{"youngBrothers": {"packing_type": "Crated"}}

	q, _, err := svc.SubmitQuote(context.Background(), req, "")
	require.NoError(t, err)
	require.NotNil(t, q.LengthInches)
	assert.Equal(t, 48.0, *q.LengthInches)
	assert.Equal(t, 3, q.Metadata.Quantity)
	assert.Equal(t, "2026-11-02", q.Metadata.ShipDate)
	assert.Equal(t, "Island Movers", *q.CompanyName)
	assert.Equal(t, models.NotifyBoth, q.Metadata.NotificationPreference)
	assert.Equal(t, "Crated", q.Metadata.CarrierSpecificFields["youngBrothers"]["packing_type"])
}

func TestSubmitQuoteFlexibleDatesDropsShipDate(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)
	req := validRequest()
	req.ShipDate = "2026-11-02"
	req.FlexibleDates = true

	q, _, err := svc.SubmitQuote(context.Background(), req, "")
	require.NoError(t, err)
	assert.Empty(t, q.Metadata.ShipDate)
	assert.True(t, q.Metadata.FlexibleDates)
}

func TestSubmitQuoteIdempotencyKey(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	first, created, err := svc.SubmitQuote(context.Background(), validRequest(), "abc-123")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.SubmitQuote(context.Background(), validRequest(), " abc-123 ")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.quotes, 1)
	assert.Len(t, notifier.notices, 1, "a replay does not notify again")
}

func TestSubmitQuoteWithoutKeyStoresDuplicates(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	_, _, err := svc.SubmitQuote(context.Background(), validRequest(), "")
	require.NoError(t, err)
	_, _, err = svc.SubmitQuote(context.Background(), validRequest(), "")
	require.NoError(t, err)
	assert.Len(t, repo.quotes, 2)
}

func TestSubmitQuoteNotifierFailureIsNotReturned(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("ses down")}
	svc := newTestService(newFakeRepo(), notifier)

	q, created, err := svc.SubmitQuote(context.Background(), validRequest(), "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, q.ID)
}

func TestSubmitQuoteNotifiesAfterClientHangsUp(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	repo := &hangupRepo{fakeRepo: newFakeRepo(), cancel: cancel}
	notifier := &fakeNotifier{}
	svc := NewService(repo, catalog.New("admin@808freight.com"), Options{PersistTimeout: time.Second, Notifier: notifier})

	_, created, err := svc.SubmitQuote(ctx, validRequest(), "key-1")
	require.NoError(t, err)
	require.True(t, created)
	require.Error(t, ctx.Err())

	require.Len(t, notifier.notices, 1)
	assert.NoError(t, notifier.ctxErr, "notification must not inherit the request cancellation")
	assert.True(t, notifier.deadline, "notification runs under its own deadline")
}

func TestSubmitQuotePersistFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failErr = errors.New("connection refused")
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	_, _, err := svc.SubmitQuote(context.Background(), validRequest(), "")
	require.Error(t, err)
	_, isValidation := models.IsValidationError(err)
	assert.False(t, isValidation)
	assert.Empty(t, notifier.notices, "nothing is sent for an unsaved quote")
}

// Two submissions, one status change, then the admin view.
func TestSubmitAndReviewFlow(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	first, _, err := svc.SubmitQuote(ctx, validRequest(), "")
	require.NoError(t, err)

	air := validRequest()
	air.ShippingType = models.ShippingAir
	air.RouteType = models.RouteWestCoastToHawaii
	air.Origin = "Los Angeles, CA (LAX)"
	air.Destination = "Honolulu, HI (HNL)"
	air.SelectedCarriers = []string{"alohaAir", "dhx"}
	second, _, err := svc.SubmitQuote(ctx, air, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, models.StatusInProgress)
	require.NoError(t, err)

	quotes, stats, err := svc.ListAllQuotes(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, second.ID, quotes[0].ID, "newest first")
	assert.Equal(t, models.StatusCounts{Total: 2, Pending: 1, InProgress: 1}, stats)

	got, err := svc.GetQuote(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestUpdateStatusErrors(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	q, _, err := svc.SubmitQuote(context.Background(), validRequest(), "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), q.ID, "archived")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), "not-a-uuid", models.StatusCompleted)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.UpdateStatus(context.Background(), "3f1e6c0a-1111-4000-8000-000000000000", models.StatusCompleted)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Any status may move to any other.
	for _, st := range []string{models.StatusCancelled, models.StatusPending, models.StatusCompleted} {
		got, err := svc.UpdateStatus(context.Background(), q.ID, st)
		require.NoError(t, err)
		assert.Equal(t, st, got.Status)
	}
}

func TestGetQuoteNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)
	_, err := svc.GetQuote(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCountStatuses(t *testing.T) {
	quotes := []*models.QuoteRequest{
		{Status: models.StatusPending},
		{Status: models.StatusPending},
		{Status: models.StatusCompleted},
		{Status: models.StatusCancelled},
	}
	assert.Equal(t, models.StatusCounts{Total: 4, Pending: 2, Completed: 1, Cancelled: 1}, CountStatuses(quotes))
	assert.Equal(t, models.StatusCounts{}, CountStatuses(nil))
}
