package quote

import (
	"context"
	"errors"
	"fmt"

	"freight-quotes/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the quote request repository.
type RepositoryInterface interface {
	// Create inserts q. When q carries an idempotency key that is already
	// stored, nothing is inserted and created is false.
	Create(ctx context.Context, q *models.QuoteRequest) (saved *models.QuoteRequest, created bool, err error)
	FindByID(ctx context.Context, quoteID string) (*models.QuoteRequest, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*models.QuoteRequest, error)
	ListAll(ctx context.Context) ([]*models.QuoteRequest, error)
	UpdateStatus(ctx context.Context, quoteID string, status string) (*models.QuoteRequest, error)
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new quote repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const quoteColumns = `id, created_at, updated_at, user_name, user_email, user_phone, company_name,
	pickup_island, delivery_island, cargo_type, weight_lbs, length_inches, width_inches, height_inches,
	selected_carriers, special_instructions, status, metadata`

// checkViolation is the SQLSTATE for a failed CHECK constraint.
const checkViolation = "23514"

// Create inserts a new quote request.
func (r *Repository) Create(ctx context.Context, q *models.QuoteRequest) (*models.QuoteRequest, bool, error) {
	query := `
		INSERT INTO quote_requests (id, user_name, user_email, user_phone, company_name,
			pickup_island, delivery_island, cargo_type, weight_lbs, length_inches, width_inches, height_inches,
			selected_carriers, special_instructions, status, metadata, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING ` + quoteColumns

	row := r.db.QueryRow(ctx, query,
		q.ID, q.UserName, q.UserEmail, q.UserPhone, q.CompanyName,
		q.PickupIsland, q.DeliveryIsland, q.CargoType, q.WeightLbs, q.LengthInches, q.WidthInches, q.HeightInches,
		q.SelectedCarriers, q.SpecialInstructions, q.Status, q.Metadata, q.IdempotencyKey,
	)
	saved, err := r.scanQuote(row)
	if err == nil {
		return saved, true, nil
	}
	if !errors.Is(err, models.ErrNotFound) || q.IdempotencyKey == nil {
		return nil, false, fmt.Errorf("repository.Create: %w", err)
	}

	// The key was already used: hand back the original record.
	existing, err := r.FindByIdempotencyKey(ctx, *q.IdempotencyKey)
	if err != nil {
		return nil, false, fmt.Errorf("repository.Create: %w", err)
	}
	return existing, false, nil
}

// scanQuote is a helper function to scan a row into a QuoteRequest model.
func (r *Repository) scanQuote(row pgx.Row) (*models.QuoteRequest, error) {
	var q models.QuoteRequest
	err := row.Scan(
		&q.ID,
		&q.CreatedAt,
		&q.UpdatedAt,
		&q.UserName,
		&q.UserEmail,
		&q.UserPhone,
		&q.CompanyName,
		&q.PickupIsland,
		&q.DeliveryIsland,
		&q.CargoType,
		&q.WeightLbs,
		&q.LengthInches,
		&q.WidthInches,
		&q.HeightInches,
		&q.SelectedCarriers,
		&q.SpecialInstructions,
		&q.Status,
		&q.Metadata,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan quote request: %w", err)
	}
	return &q, nil
}

// FindByID retrieves a single quote request by its ID.
func (r *Repository) FindByID(ctx context.Context, quoteID string) (*models.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests WHERE id = $1`
	q, err := r.scanQuote(r.db.QueryRow(ctx, query, quoteID))
	if err != nil {
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return q, nil
}

// FindByIdempotencyKey retrieves the quote request stored under key.
func (r *Repository) FindByIdempotencyKey(ctx context.Context, key string) (*models.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests WHERE idempotency_key = $1`
	q, err := r.scanQuote(r.db.QueryRow(ctx, query, key))
	if err != nil {
		return nil, fmt.Errorf("repository.FindByIdempotencyKey: %w", err)
	}
	return q, nil
}

// ListAll retrieves every quote request, newest first. There is no paging;
// the admin view loads the whole table.
func (r *Repository) ListAll(ctx context.Context) ([]*models.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository.ListAll.Query: %w", err)
	}
	defer rows.Close()

	quotes := []*models.QuoteRequest{}
	for rows.Next() {
		q, err := r.scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.ListAll.Scan: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.ListAll.Rows: %w", err)
	}
	return quotes, nil
}

// UpdateStatus sets the status of one quote request and returns the result.
func (r *Repository) UpdateStatus(ctx context.Context, quoteID string, status string) (*models.QuoteRequest, error) {
	query := `
		UPDATE quote_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + quoteColumns

	q, err := r.scanQuote(r.db.QueryRow(ctx, query, status, quoteID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == checkViolation {
			return nil, models.ErrInvalidStatus
		}
		return nil, fmt.Errorf("repository.UpdateStatus: %w", err)
	}
	return q, nil
}
