package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
	"github.com/campushire/placement-portal/internal/pkg/dberrors"
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Create inserts a new college. The code must be unique across all colleges;
// the unique index maps a duplicate straight to ErrCollegeCodeExists.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	query := `
		INSERT INTO colleges (name, code, location)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, college.Name, college.Code, college.Location).
		Scan(&college.ID, &college.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCollegeCodeExists
		}
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// GetAll retrieves all colleges ordered by name
func (r *CollegeRepository) GetAll(ctx context.Context) ([]models.College, error) {
	query := `
		SELECT id, name, code, location, created_at
		FROM colleges
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing colleges: %w", err)
	}
	defer rows.Close()

	colleges := []models.College{}
	for rows.Next() {
		var college models.College
		if err := rows.Scan(
			&college.ID,
			&college.Name,
			&college.Code,
			&college.Location,
			&college.CreatedAt,
		); err != nil {
			return nil, err
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id string) (*models.College, error) {
	query := `
		SELECT id, name, code, location, created_at
		FROM colleges
		WHERE id = $1
	`

	var college models.College
	err := r.db.QueryRow(ctx, query, id).Scan(
		&college.ID,
		&college.Name,
		&college.Code,
		&college.Location,
		&college.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return &college, nil
}

// Exists reports whether a college with the given ID exists
func (r *CollegeRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM colleges WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking college existence: %w", err)
	}
	return exists, nil
}

// Delete removes a college by ID
func (r *CollegeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCollegeHasUsers
		}
		return fmt.Errorf("error deleting college: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}
