package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/app/repositories"
	"github.com/campushire/placement-portal/internal/db"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
	"github.com/campushire/placement-portal/internal/pkg/auth"
)

// defaultColleges are created on first startup so the portal is usable
// immediately.
var defaultColleges = []models.College{
	{Name: "MIT College of Engineering", Code: "MIT", Location: "Pune, Maharashtra"},
	{Name: "VIT University", Code: "VIT", Location: "Vellore, Tamil Nadu"},
	{Name: "BITS Pilani", Code: "BITS", Location: "Pilani, Rajasthan"},
}

// CreateDefaultData seeds the default colleges, each with an approved admin
// account, when they do not exist yet. Reruns are no-ops: existing colleges
// are detected by code and left alone.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, adminPassword string, lgr zerolog.Logger) error {
	if adminPassword == "" {
		adminPassword = "ChangeMe123!"
		lgr.Warn().Msg("No seed admin password configured, using the default; change it before going live")
	}

	collegeRepo := repositories.NewCollegeRepository(database.Pool)

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	var finalErr error
	for _, college := range defaultColleges {
		c := college
		if err := collegeRepo.Create(ctx, &c); err != nil {
			if errors.Is(err, apperrors.ErrCollegeCodeExists) {
				continue
			}
			lgr.Error().Err(err).Str("code", college.Code).Msg("Error creating default college")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		// The college and its admin either both exist afterwards or neither does.
		err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			code := strings.ToLower(c.Code)
			var adminID string
			err := tx.QueryRow(ctx, `
				INSERT INTO users (username, email, full_name, role, college_id, department, is_active, is_approved)
				VALUES ($1, $2, $3, $4, $5, $6, TRUE, TRUE)
				RETURNING id`,
				"admin"+code, fmt.Sprintf("admin@%s.edu", code), c.Code+" Admin",
				models.RoleAdmin, c.ID, "Administration",
			).Scan(&adminID)
			if err != nil {
				return fmt.Errorf("failed to create admin for %s: %w", c.Code, err)
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO user_passwords (user_id, password_hash) VALUES ($1, $2)`,
				adminID, passwordHash)
			if err != nil {
				return fmt.Errorf("failed to create admin credential for %s: %w", c.Code, err)
			}

			return nil
		})
		if err != nil {
			lgr.Error().Err(err).Str("code", c.Code).Msg("Error seeding default admin")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		lgr.Info().Str("code", c.Code).Str("admin", "admin"+strings.ToLower(c.Code)).Msg("Seeded default college with admin account")
	}

	return finalErr
}
