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
	"github.com/campushire/placement-portal/internal/pkg/dberrors"
)

// ApplicationRepository handles database operations for job applications
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var application models.Application
	err := row.Scan(
		&application.ID,
		&application.JobID,
		&application.StudentID,
		&application.StudentName,
		&application.StudentEmail,
		&application.CollegeID,
		&application.AppliedAt,
		&application.Status,
	)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// Create inserts a new application. The unique index on (job_id, student_id)
// turns a repeat application into ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (job_id, student_id, student_name, student_email, college_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, applied_at
	`

	err := r.db.QueryRow(ctx, query,
		application.JobID, application.StudentID, application.StudentName,
		application.StudentEmail, application.CollegeID, application.Status,
	).Scan(&application.ID, &application.AppliedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID within a college
func (r *ApplicationRepository) GetByID(ctx context.Context, id, collegeID string) (*models.Application, error) {
	query := `
		SELECT id, job_id, student_id, student_name, student_email, college_id, applied_at, status
		FROM applications
		WHERE id = $1 AND college_id = $2
	`

	application, err := scanApplication(r.db.QueryRow(ctx, query, id, collegeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return application, nil
}

// GetAll retrieves applications of a college, newest first, with optional
// student and job filtering and pagination
func (r *ApplicationRepository) GetAll(ctx context.Context, collegeID string, studentID, jobID *string, page, pageSize int) ([]models.Application, int64, error) {
	whereCondition := squirrel.And{squirrel.Eq{"college_id": collegeID}}
	if studentID != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"student_id": *studentID})
	}
	if jobID != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"job_id": *jobID})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("applications").Where(whereCondition).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	if totalItems == 0 {
		return []models.Application{}, 0, nil
	}

	listSql, listArgs, err := r.sb.Select(
		"id", "job_id", "student_id", "student_name", "student_email",
		"college_id", "applied_at", "status",
	).
		From("applications").
		Where(whereCondition).
		OrderBy("applied_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	applications := []models.Application{}
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		applications = append(applications, *application)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, totalItems, nil
}

// UpdateStatus changes the status of an application within a college
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, collegeID string, status models.ApplicationStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2 AND college_id = $3`,
		status, id, collegeID)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}
