//go:build integration

package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-portal/internal/app/migrations"
	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
)

// newTestPool connects to the database named by TEST_DATABASE_URL and brings
// the schema up to date. Tests using it are skipped when the variable is
// unset, so the regular unit run stays database-free.
func newTestPool(t *testing.T) *pgxpool.Pool {
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
	return pool
}

func createTestCollege(t *testing.T, repo *CollegeRepository) *models.College {
	t.Helper()
	college := &models.College{
		Name:     "Test College " + uuid.NewString()[:8],
		Code:     "TC-" + uuid.NewString(),
		Location: "Test City",
	}
	require.NoError(t, repo.Create(context.Background(), college))
	return college
}

func createTestUser(t *testing.T, repo *UserRepository, collegeID string, role models.RoleType) *models.User {
	t.Helper()
	suffix := uuid.NewString()
	user := &models.User{
		Username:   "user-" + suffix[:8],
		Email:      suffix + "@test.edu",
		FullName:   "Test User",
		Role:       role,
		CollegeID:  collegeID,
		IsActive:   true,
		IsApproved: true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func createTestJob(t *testing.T, repo *JobRepository, collegeID string, createdBy *string, deadline time.Time) *models.JobPosting {
	t.Helper()
	job := &models.JobPosting{
		CollegeID:       collegeID,
		CompanyName:     "Acme",
		Location:        "Remote",
		JobCategory:     "Software",
		JobDescription:  "Build things",
		TermsConditions: "Standard",
		Deadline:        &deadline,
		Status:          models.JobStatusActive,
		CreatedBy:       createdBy,
	}
	require.NoError(t, repo.Create(context.Background(), job))
	return job
}

func TestJobRepository_CrossCollegeLookupNotFound(t *testing.T) {
	pool := newTestPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	collegeA := createTestCollege(t, repos.CollegeRepository)
	collegeB := createTestCollege(t, repos.CollegeRepository)
	moderator := createTestUser(t, repos.UserRepository, collegeA.ID, models.RoleModerator)
	job := createTestJob(t, repos.JobRepository, collegeA.ID, &moderator.ID, time.Now().Add(24*time.Hour))

	found, err := repos.JobRepository.GetByID(ctx, job.ID, collegeA.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, found.ID)

	_, err = repos.JobRepository.GetByID(ctx, job.ID, collegeB.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	_, err = repos.UserRepository.GetByID(ctx, moderator.ID, collegeB.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepository_UniqueViolations(t *testing.T) {
	pool := newTestPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	collegeA := createTestCollege(t, repos.CollegeRepository)
	collegeB := createTestCollege(t, repos.CollegeRepository)
	existing := createTestUser(t, repos.UserRepository, collegeA.ID, models.RoleStudent)

	sameUsername := &models.User{
		Username:  existing.Username,
		Email:     uuid.NewString() + "@test.edu",
		FullName:  "Duplicate Username",
		Role:      models.RoleStudent,
		CollegeID: collegeA.ID,
	}
	assert.ErrorIs(t, repos.UserRepository.Create(ctx, sameUsername), apperrors.ErrUsernameExists)

	// The same username in another college is fine; the email index is
	// global, so reusing the email is not.
	sameEmail := &models.User{
		Username:  existing.Username,
		Email:     existing.Email,
		FullName:  "Duplicate Email",
		Role:      models.RoleStudent,
		CollegeID: collegeB.ID,
	}
	assert.ErrorIs(t, repos.UserRepository.Create(ctx, sameEmail), apperrors.ErrEmailExists)
}

func TestApplicationRepository_DuplicateApplication(t *testing.T) {
	pool := newTestPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	college := createTestCollege(t, repos.CollegeRepository)
	moderator := createTestUser(t, repos.UserRepository, college.ID, models.RoleModerator)
	student := createTestUser(t, repos.UserRepository, college.ID, models.RoleStudent)
	job := createTestJob(t, repos.JobRepository, college.ID, &moderator.ID, time.Now().Add(24*time.Hour))

	first := &models.Application{
		JobID:        job.ID,
		StudentID:    student.ID,
		StudentName:  student.FullName,
		StudentEmail: student.Email,
		CollegeID:    college.ID,
		Status:       models.ApplicationStatusPending,
	}
	require.NoError(t, repos.ApplicationRepository.Create(ctx, first))

	second := &models.Application{
		JobID:        job.ID,
		StudentID:    student.ID,
		StudentName:  student.FullName,
		StudentEmail: student.Email,
		CollegeID:    college.ID,
		Status:       models.ApplicationStatusPending,
	}
	assert.ErrorIs(t, repos.ApplicationRepository.Create(ctx, second), apperrors.ErrAlreadyApplied)
}

func TestUserRepository_DeleteKeepsAuthoredJobs(t *testing.T) {
	pool := newTestPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	college := createTestCollege(t, repos.CollegeRepository)
	moderator := createTestUser(t, repos.UserRepository, college.ID, models.RoleModerator)
	job := createTestJob(t, repos.JobRepository, college.ID, &moderator.ID, time.Now().Add(24*time.Hour))

	require.NoError(t, repos.UserRepository.Delete(ctx, moderator.ID, college.ID))

	// The posting survives with its authorship cleared.
	found, err := repos.JobRepository.GetByID(ctx, job.ID, college.ID)
	require.NoError(t, err)
	assert.Nil(t, found.CreatedBy)
}
