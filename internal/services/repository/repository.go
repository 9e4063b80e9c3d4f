package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"careportal_backend/platform/apperr"
)

const careServiceNotFoundMessage = "care service not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new care services repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

func scanCareService(row pgx.Row) (CareService, error) {
	var cs CareService
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&cs.ID, &cs.Name, &cs.Description, &cs.DurationMinutes, &cs.PriceCents,
		&cs.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return CareService{}, err
	}

	cs.CreatedAt = createdAt.Format(time.RFC3339)
	cs.UpdatedAt = updatedAt.Format(time.RFC3339)
	return cs, nil
}

// GetByID retrieves a care service by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (CareService, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, is_active, created_at, updated_at
		FROM care_services
		WHERE id = $1`

	cs, err := scanCareService(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CareService{}, apperr.NotFound(careServiceNotFoundMessage)
		}
		return CareService{}, fmt.Errorf("get care service by id: %w", err)
	}

	return cs, nil
}

func (r *Repo) list(ctx context.Context, query string) ([]CareService, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list care services: %w", err)
	}
	defer rows.Close()

	items := make([]CareService, 0)
	for rows.Next() {
		cs, err := scanCareService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan care service: %w", err)
		}
		items = append(items, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate care services: %w", err)
	}

	return items, nil
}

// List retrieves all care services.
func (r *Repo) List(ctx context.Context) ([]CareService, error) {
	return r.list(ctx, `
		SELECT id, name, description, duration_minutes, price_cents, is_active, created_at, updated_at
		FROM care_services
		ORDER BY name`)
}

// ListActive retrieves the care services open for booking.
func (r *Repo) ListActive(ctx context.Context) ([]CareService, error) {
	return r.list(ctx, `
		SELECT id, name, description, duration_minutes, price_cents, is_active, created_at, updated_at
		FROM care_services
		WHERE is_active = TRUE
		ORDER BY name`)
}

// Create inserts a new care service.
func (r *Repo) Create(ctx context.Context, params CreateParams) (CareService, error) {
	query := `
		INSERT INTO care_services (id, name, description, duration_minutes, price_cents, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, name, description, duration_minutes, price_cents, is_active, created_at, updated_at`

	cs, err := scanCareService(r.pool.QueryRow(ctx, query,
		uuid.New(), params.Name, params.Description, params.DurationMinutes, params.PriceCents,
	))
	if err != nil {
		return CareService{}, fmt.Errorf("create care service: %w", err)
	}

	return cs, nil
}

// Update modifies an existing care service. Nil fields keep their value.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (CareService, error) {
	query := `
		UPDATE care_services SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			duration_minutes = COALESCE($4, duration_minutes),
			price_cents = COALESCE($5, price_cents),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, duration_minutes, price_cents, is_active, created_at, updated_at`

	cs, err := scanCareService(r.pool.QueryRow(ctx, query,
		params.ID, params.Name, params.Description, params.DurationMinutes, params.PriceCents,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CareService{}, apperr.NotFound(careServiceNotFoundMessage)
		}
		return CareService{}, fmt.Errorf("update care service: %w", err)
	}

	return cs, nil
}

// SetActive toggles whether a care service can be booked.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	query := `UPDATE care_services SET is_active = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, isActive)
	if err != nil {
		return fmt.Errorf("set care service active: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(careServiceNotFoundMessage)
	}

	return nil
}
