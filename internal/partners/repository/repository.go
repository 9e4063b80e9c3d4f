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

const partnerNotFoundMessage = "partner not found"

// Partner represents a professional who takes appointments through the
// platform.
type Partner struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	Profession string    `db:"profession"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Bio        *string   `db:"bio"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// CreateParams contains parameters for creating a partner.
type CreateParams struct {
	Name       string
	Profession string
	Email      string
	Phone      string
	Bio        *string
}

// UpdateParams contains parameters for updating a partner.
type UpdateParams struct {
	ID         uuid.UUID
	Name       *string
	Profession *string
	Email      *string
	Phone      *string
	Bio        *string
}

// Repository provides database operations for partners.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new partners repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanPartner(row pgx.Row) (Partner, error) {
	var p Partner
	err := row.Scan(
		&p.ID, &p.Name, &p.Profession, &p.Email, &p.Phone, &p.Bio,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetByID retrieves a partner by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Partner, error) {
	query := `
		SELECT id, name, profession, email, phone, bio, is_active, created_at, updated_at
		FROM partners WHERE id = $1`

	p, err := scanPartner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Partner{}, apperr.NotFound(partnerNotFoundMessage)
		}
		return Partner{}, fmt.Errorf("get partner by id: %w", err)
	}

	return p, nil
}

func (r *Repository) list(ctx context.Context, query string) ([]Partner, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	items := make([]Partner, 0)
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate partners: %w", err)
	}

	return items, nil
}

// List retrieves all partners.
func (r *Repository) List(ctx context.Context) ([]Partner, error) {
	return r.list(ctx, `
		SELECT id, name, profession, email, phone, bio, is_active, created_at, updated_at
		FROM partners ORDER BY name`)
}

// ListActive retrieves the partners currently accepting bookings.
func (r *Repository) ListActive(ctx context.Context) ([]Partner, error) {
	return r.list(ctx, `
		SELECT id, name, profession, email, phone, bio, is_active, created_at, updated_at
		FROM partners WHERE is_active = TRUE ORDER BY name`)
}

// Create inserts a new partner.
func (r *Repository) Create(ctx context.Context, params CreateParams) (Partner, error) {
	query := `
		INSERT INTO partners (id, name, profession, email, phone, bio, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id, name, profession, email, phone, bio, is_active, created_at, updated_at`

	p, err := scanPartner(r.pool.QueryRow(ctx, query,
		uuid.New(), params.Name, params.Profession, params.Email, params.Phone, params.Bio,
	))
	if err != nil {
		return Partner{}, fmt.Errorf("create partner: %w", err)
	}

	return p, nil
}

// Update modifies an existing partner. Nil fields keep their value.
func (r *Repository) Update(ctx context.Context, params UpdateParams) (Partner, error) {
	query := `
		UPDATE partners SET
			name = COALESCE($2, name),
			profession = COALESCE($3, profession),
			email = COALESCE($4, email),
			phone = COALESCE($5, phone),
			bio = COALESCE($6, bio),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, profession, email, phone, bio, is_active, created_at, updated_at`

	p, err := scanPartner(r.pool.QueryRow(ctx, query,
		params.ID, params.Name, params.Profession, params.Email, params.Phone, params.Bio,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Partner{}, apperr.NotFound(partnerNotFoundMessage)
		}
		return Partner{}, fmt.Errorf("update partner: %w", err)
	}

	return p, nil
}

// SetActive toggles whether a partner accepts bookings.
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	query := `UPDATE partners SET is_active = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, isActive)
	if err != nil {
		return fmt.Errorf("set partner active: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(partnerNotFoundMessage)
	}

	return nil
}
