package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
)

// JobRepository handles database operations for job postings
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanJob(row pgx.Row) (*models.JobPosting, error) {
	var job models.JobPosting
	err := row.Scan(
		&job.ID,
		&job.CollegeID,
		&job.CompanyName,
		&job.Location,
		&job.JobCategory,
		&job.JobDescription,
		&job.TermsConditions,
		&job.TenthPercentage,
		&job.TwelfthPercentage,
		&job.CGPA,
		&job.Skills,
		&job.OtherSkill,
		&job.Deadline,
		&job.Status,
		&job.CreatedBy,
		&job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create inserts a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	query := `
		INSERT INTO jobs (
			college_id, company_name, location, job_category, job_description,
			terms_conditions, tenth_percentage, twelfth_percentage, cgpa,
			skills, other_skill, deadline, status, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		job.CollegeID, job.CompanyName, job.Location, job.JobCategory, job.JobDescription,
		job.TermsConditions, job.TenthPercentage, job.TwelfthPercentage, job.CGPA,
		job.Skills, job.OtherSkill, job.Deadline, job.Status, job.CreatedBy,
	).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

// GetByID retrieves a job posting by ID within a college
func (r *JobRepository) GetByID(ctx context.Context, id, collegeID string) (*models.JobPosting, error) {
	query := `
		SELECT id, college_id, company_name, location, job_category, job_description,
		       terms_conditions, tenth_percentage, twelfth_percentage, cgpa,
		       skills, other_skill, deadline, status, created_by, created_at
		FROM jobs
		WHERE id = $1 AND college_id = $2
	`

	job, err := scanJob(r.db.QueryRow(ctx, query, id, collegeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return job, nil
}

// GetAll retrieves job postings of a college with optional status filtering and pagination
func (r *JobRepository) GetAll(ctx context.Context, collegeID string, status *models.JobStatus, page, pageSize int) ([]models.JobPosting, int64, error) {
	whereCondition := squirrel.And{squirrel.Eq{"college_id": collegeID}}
	if status != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"status": *status})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("jobs").Where(whereCondition).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count jobs query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	if totalItems == 0 {
		return []models.JobPosting{}, 0, nil
	}

	listSql, listArgs, err := r.sb.Select(
		"id", "college_id", "company_name", "location", "job_category", "job_description",
		"terms_conditions", "tenth_percentage", "twelfth_percentage", "cgpa",
		"skills", "other_skill", "deadline", "status", "created_by", "created_at",
	).
		From("jobs").
		Where(whereCondition).
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.JobPosting{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return jobs, totalItems, nil
}

// Update rewrites the mutable fields of a job posting within a college
func (r *JobRepository) Update(ctx context.Context, job *models.JobPosting) error {
	query := `
		UPDATE jobs SET
			company_name = $1, location = $2, job_category = $3, job_description = $4,
			terms_conditions = $5, tenth_percentage = $6, twelfth_percentage = $7,
			cgpa = $8, skills = $9, other_skill = $10, deadline = $11, status = $12
		WHERE id = $13 AND college_id = $14
	`

	tag, err := r.db.Exec(ctx, query,
		job.CompanyName, job.Location, job.JobCategory, job.JobDescription,
		job.TermsConditions, job.TenthPercentage, job.TwelfthPercentage,
		job.CGPA, job.Skills, job.OtherSkill, job.Deadline, job.Status,
		job.ID, job.CollegeID,
	)
	if err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// MarkInactive flips an active job whose deadline has passed to inactive.
// The status guard keeps a concurrent manual update from being overwritten.
func (r *JobRepository) MarkInactive(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $1 WHERE id = $2 AND status = $3`,
		models.JobStatusInactive, id, models.JobStatusActive)
	if err != nil {
		return fmt.Errorf("error marking job inactive: %w", err)
	}

	return nil
}

// Delete removes a job posting within a college. Applications pointing at it
// are removed by the foreign key cascade.
func (r *JobRepository) Delete(ctx context.Context, id, collegeID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND college_id = $2`, id, collegeID)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// CountByCollege returns the number of job postings belonging to a college
func (r *JobRepository) CountByCollege(ctx context.Context, collegeID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE college_id = $1`, collegeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting jobs: %w", err)
	}
	return count, nil
}
