//go:build integration

package quote

import (
	"context"
	"os"
	"testing"

	"freight-quotes/internal/database"
	"freight-quotes/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := database.Connect(ctx, url)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE quote_requests`)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func sampleQuote() *models.QuoteRequest {
	length, width, height := 48.0, 40.0, 36.0
	company := "Island Movers"
	return &models.QuoteRequest{
		ID:               uuid.NewString(),
		UserName:         "Kai",
		UserEmail:        "kai@example.com",
		UserPhone:        "8085551234",
		CompanyName:      &company,
		PickupIsland:     "Honolulu, HI (Honolulu Harbor)",
		DeliveryIsland:   "Hilo, HI (Hilo Harbor)",
		CargoType:        "general",
		WeightLbs:        500,
		LengthInches:     &length,
		WidthInches:      &width,
		HeightInches:     &height,
		SelectedCarriers: []string{"youngBrothers", "matson"},
		Status:           models.StatusPending,
		Metadata: models.QuoteMetadata{
			ShippingType:          models.ShippingOcean,
			RouteType:             models.RouteInterIsland,
			Quantity:              2,
			CarrierSpecificFields: map[string]map[string]string{"youngBrothers": {"packing_type": "Crated"}},
		},
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	repo := NewRepository(testPool(t))
	ctx := context.Background()

	in := sampleQuote()
	saved, created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, in.ID, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"youngBrothers", "matson"}, got.SelectedCarriers)
	assert.Equal(t, 2, got.Metadata.Quantity)
	assert.Equal(t, "Crated", got.Metadata.CarrierSpecificFields["youngBrothers"]["packing_type"])
	require.NotNil(t, got.LengthInches)
	assert.Equal(t, 48.0, *got.LengthInches)
	assert.Nil(t, got.SpecialInstructions)

	updated, err := repo.UpdateStatus(ctx, in.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.True(t, !updated.UpdatedAt.Before(saved.UpdatedAt))

	_, err = repo.UpdateStatus(ctx, in.ID, "archived")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRepositoryIdempotencyKey(t *testing.T) {
	repo := NewRepository(testPool(t))
	ctx := context.Background()
	key := "submit-42"

	first := sampleQuote()
	first.IdempotencyKey = &key
	_, created, err := repo.Create(ctx, first)
	require.NoError(t, err)
	require.True(t, created)

	again := sampleQuote()
	again.IdempotencyKey = &key
	saved, created, err := repo.Create(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, saved.ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepositoryListNewestFirst(t *testing.T) {
	repo := NewRepository(testPool(t))
	ctx := context.Background()

	older := sampleQuote()
	_, _, err := repo.Create(ctx, older)
	require.NoError(t, err)
	newer := sampleQuote()
	_, _, err = repo.Create(ctx, newer)
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
}
