package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
)

// CredentialRepository handles database operations for the user_passwords table
type CredentialRepository struct {
	db *pgxpool.Pool
}

// NewCredentialRepository creates a new CredentialRepository
func NewCredentialRepository(db *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts the credential row for a freshly registered user
func (r *CredentialRepository) Create(ctx context.Context, credential *models.Credential) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_passwords (user_id, password_hash) VALUES ($1, $2)`,
		credential.UserID, credential.PasswordHash)
	if err != nil {
		return fmt.Errorf("error creating credential: %w", err)
	}

	return nil
}

// GetByUserID retrieves the credential of a user
func (r *CredentialRepository) GetByUserID(ctx context.Context, userID string) (*models.Credential, error) {
	query := `
		SELECT user_id, password_hash, reset_token, reset_token_created_at
		FROM user_passwords
		WHERE user_id = $1
	`

	var credential models.Credential
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&credential.UserID,
		&credential.PasswordHash,
		&credential.ResetToken,
		&credential.ResetTokenCreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("error retrieving credential: %w", err)
	}

	return &credential, nil
}

// SetResetToken stores a fresh password reset token, replacing any earlier one
func (r *CredentialRepository) SetResetToken(ctx context.Context, userID, token string, createdAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE user_passwords SET reset_token = $1, reset_token_created_at = $2 WHERE user_id = $3`,
		token, createdAt, userID)
	if err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCredentialNotFound
	}

	return nil
}

// UpdatePassword replaces the password hash and consumes any pending reset token
func (r *CredentialRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE user_passwords SET password_hash = $1, reset_token = NULL, reset_token_created_at = NULL WHERE user_id = $2`,
		passwordHash, userID)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCredentialNotFound
	}

	return nil
}
