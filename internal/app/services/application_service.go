package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushire/placement-portal/internal/app/auth"
	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/app/repositories"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
)

// ApplicationService handles job application operations
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	userRepo        *repositories.UserRepository
	jobService      *JobService
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	userRepo *repositories.UserRepository,
	jobService *JobService,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		jobService:      jobService,
		logger:          logger,
	}
}

// Apply creates an application for the calling student. The job must belong
// to the student's college, be active, and still be before its deadline. The
// student's name and email are copied onto the application so the record
// stays intact if the account changes later.
func (s *ApplicationService) Apply(ctx context.Context, actorID, collegeID string, role models.RoleType, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if err := auth.Require(role, auth.OpApplyToJob); err != nil {
		return nil, err
	}

	job, err := s.jobService.GetJobByID(ctx, req.JobID, collegeID)
	if err != nil {
		return nil, err
	}

	// The deadline check comes first: a job that just lapsed has already been
	// flipped to inactive by the read above, and the caller should hear about
	// the deadline rather than the status it caused.
	if job.DeadlineElapsed(time.Now()) {
		return nil, apperrors.ErrDeadlinePassed
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobInactive
	}

	student, err := s.userRepo.GetByID(ctx, actorID, collegeID)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		JobID:        job.ID,
		StudentID:    student.ID,
		StudentName:  student.FullName,
		StudentEmail: student.Email,
		CollegeID:    collegeID,
		Status:       models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("applicationId", application.ID).
		Str("jobId", job.ID).
		Str("studentId", student.ID).
		Msg("Application submitted")

	return application, nil
}

// GetApplications lists applications visible to the caller, newest first.
// Students only ever see their own; moderators and admins see every
// application in their college, optionally narrowed to one job.
func (s *ApplicationService) GetApplications(ctx context.Context, actorID, collegeID string, role models.RoleType, jobID *string, page, pageSize int) ([]models.Application, int64, error) {
	var studentID *string
	if role == models.RoleStudent {
		studentID = &actorID
	}

	return s.applicationRepo.GetAll(ctx, collegeID, studentID, jobID, page, pageSize)
}

// GetApplicationByID retrieves one application. A student asking for someone
// else's application is refused rather than told it does not exist.
func (s *ApplicationService) GetApplicationByID(ctx context.Context, id, actorID, collegeID string, role models.RoleType) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id, collegeID)
	if err != nil {
		return nil, err
	}

	if role == models.RoleStudent && application.StudentID != actorID {
		return nil, apperrors.ErrPermissionDenied
	}

	return application, nil
}

// UpdateApplicationStatus records an accept/reject decision on an application
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, id, collegeID string, role models.RoleType, status models.ApplicationStatus) (*models.Application, error) {
	if err := auth.Require(role, auth.OpUpdateApplicationStatus); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, collegeID, status); err != nil {
		return nil, err
	}

	return s.applicationRepo.GetByID(ctx, id, collegeID)
}
