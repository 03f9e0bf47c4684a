//go:build integration

package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-portal/internal/app/migrations"
	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/app/repositories"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
	"github.com/campushire/placement-portal/internal/pkg/auth"
)

type serviceTestEnv struct {
	repos       *repositories.Repositories
	authService *AuthService
	jobService  *JobService
	appService  *ApplicationService
	college     *models.College
}

// newServiceTestEnv wires the full service stack against the database named
// by TEST_DATABASE_URL, with a fresh college per test. Skipped when the
// variable is unset.
func newServiceTestEnv(t *testing.T) *serviceTestEnv {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory(ctx, "../../../migrations"))

	repos := repositories.NewRepositories(pool)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "integration-secret",
		SessionTokenExp: time.Hour,
		ResetTokenExp:   time.Hour,
		TokenIssuer:     "placement-portal-test",
	})
	lgr := zerolog.Nop()

	jobService := NewJobService(repos.JobRepository, lgr)

	college := &models.College{
		Name:     "Service Test College " + uuid.NewString()[:8],
		Code:     "STC-" + uuid.NewString(),
		Location: "Test City",
	}
	require.NoError(t, repos.CollegeRepository.Create(ctx, college))

	return &serviceTestEnv{
		repos:       repos,
		authService: NewAuthService(repos.UserRepository, repos.CredentialRepository, repos.CollegeRepository, jwtService, lgr),
		jobService:  jobService,
		appService:  NewApplicationService(repos.ApplicationRepository, repos.UserRepository, jobService, lgr),
		college:     college,
	}
}

func TestAuthService_ResetTokenSingleUse(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	email := uuid.NewString() + "@test.edu"
	user, err := env.authService.Register(ctx, &dto.RegisterRequest{
		Username:  "reset-" + uuid.NewString()[:8],
		Email:     email,
		FullName:  "Reset Tester",
		Password:  "original-pass-1",
		Role:      string(models.RoleAdmin),
		CollegeID: env.college.ID,
	})
	require.NoError(t, err)

	resp, err := env.authService.ForgotPassword(ctx, &dto.ForgotPasswordRequest{
		Email:     email,
		Username:  user.Username,
		CollegeID: env.college.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ResetToken)

	reset := &dto.ResetPasswordRequest{
		Email:       email,
		CollegeID:   env.college.ID,
		ResetToken:  resp.ResetToken,
		NewPassword: "brand-new-pass-1",
	}
	require.NoError(t, env.authService.ResetPassword(ctx, reset))

	// The update consumed the stored token, so replaying it fails even
	// though the JWT itself is still within its lifetime.
	reset.NewPassword = "brand-new-pass-2"
	assert.ErrorIs(t, env.authService.ResetPassword(ctx, reset), apperrors.ErrInvalidResetToken)
}

func TestApplicationService_ApplyAfterDeadline(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	student := &models.User{
		Username:   "student-" + uuid.NewString()[:8],
		Email:      uuid.NewString() + "@test.edu",
		FullName:   "Late Applicant",
		Role:       models.RoleStudent,
		CollegeID:  env.college.ID,
		IsActive:   true,
		IsApproved: true,
	}
	require.NoError(t, env.repos.UserRepository.Create(ctx, student))

	deadline := time.Now().Add(-time.Hour)
	job := &models.JobPosting{
		CollegeID:       env.college.ID,
		CompanyName:     "Acme",
		Location:        "Remote",
		JobCategory:     "Software",
		JobDescription:  "Build things",
		TermsConditions: "Standard",
		Deadline:        &deadline,
		Status:          models.JobStatusActive,
	}
	require.NoError(t, env.repos.JobRepository.Create(ctx, job))

	// The read inside Apply flips the lapsed job to inactive, but the
	// caller still hears about the deadline, not the status change.
	_, err := env.appService.Apply(ctx, student.ID, env.college.ID, models.RoleStudent,
		&dto.CreateApplicationRequest{JobID: job.ID})
	assert.ErrorIs(t, err, apperrors.ErrDeadlinePassed)

	refreshed, err := env.jobService.GetJobByID(ctx, job.ID, env.college.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInactive, refreshed.Status)
}
