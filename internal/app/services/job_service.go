package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushire/placement-portal/internal/app/auth"
	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/app/repositories"
)

// JobService handles job posting operations
type JobService struct {
	jobRepo *repositories.JobRepository
	logger  zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo *repositories.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// refreshStatus flips an active posting whose deadline has passed to
// inactive. Postings transition lazily when read rather than on a timer.
func (s *JobService) refreshStatus(ctx context.Context, job *models.JobPosting, now time.Time) {
	if job.Status != models.JobStatusActive || !job.DeadlineElapsed(now) {
		return
	}
	if err := s.jobRepo.MarkInactive(ctx, job.ID); err != nil {
		s.logger.Warn().Err(err).Str("jobId", job.ID).Msg("Failed to mark expired job inactive")
		return
	}
	job.Status = models.JobStatusInactive
}

// CreateJob creates a job posting in the caller's college
func (s *JobService) CreateJob(ctx context.Context, actorID, collegeID string, role models.RoleType, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	if err := auth.Require(role, auth.OpCreateJob); err != nil {
		return nil, err
	}

	status := models.JobStatusActive
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	deadline := req.Deadline
	job := &models.JobPosting{
		CollegeID:         collegeID,
		CompanyName:       req.CompanyName,
		Location:          req.Location,
		JobCategory:       req.JobCategory,
		JobDescription:    req.JobDescription,
		TermsConditions:   req.TermsConditions,
		TenthPercentage:   req.TenthPercentage,
		TwelfthPercentage: req.TwelfthPercentage,
		CGPA:              req.CGPA,
		Skills:            req.Skills,
		OtherSkill:        req.OtherSkill,
		Deadline:          &deadline,
		Status:            status,
		CreatedBy:         &actorID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("jobId", job.ID).
		Str("collegeId", collegeID).
		Str("company", job.CompanyName).
		Msg("Job posting created")

	return job, nil
}

// GetJobByID retrieves a job posting in the caller's college
func (s *JobService) GetJobByID(ctx context.Context, id, collegeID string) (*models.JobPosting, error) {
	job, err := s.jobRepo.GetByID(ctx, id, collegeID)
	if err != nil {
		return nil, err
	}

	s.refreshStatus(ctx, job, time.Now())
	return job, nil
}

// GetJobs retrieves job postings of the caller's college with optional
// status filtering and pagination
func (s *JobService) GetJobs(ctx context.Context, collegeID string, status *models.JobStatus, page, pageSize int) ([]models.JobPosting, int64, error) {
	jobs, total, err := s.jobRepo.GetAll(ctx, collegeID, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	for i := range jobs {
		s.refreshStatus(ctx, &jobs[i], now)
	}

	return jobs, total, nil
}

// UpdateJob applies a partial update to a job posting
func (s *JobService) UpdateJob(ctx context.Context, id, collegeID string, role models.RoleType, req *dto.UpdateJobRequest) (*models.JobPosting, error) {
	if err := auth.Require(role, auth.OpUpdateJob); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, id, collegeID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		job.CompanyName = *req.CompanyName
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobCategory != nil {
		job.JobCategory = *req.JobCategory
	}
	if req.JobDescription != nil {
		job.JobDescription = *req.JobDescription
	}
	if req.TermsConditions != nil {
		job.TermsConditions = *req.TermsConditions
	}
	if req.TenthPercentage != nil {
		job.TenthPercentage = *req.TenthPercentage
	}
	if req.TwelfthPercentage != nil {
		job.TwelfthPercentage = *req.TwelfthPercentage
	}
	if req.CGPA != nil {
		job.CGPA = *req.CGPA
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.OtherSkill != nil {
		job.OtherSkill = *req.OtherSkill
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// DeleteJob removes a job posting along with its applications
func (s *JobService) DeleteJob(ctx context.Context, id, collegeID string, role models.RoleType) error {
	if err := auth.Require(role, auth.OpDeleteJob); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, id, collegeID); err != nil {
		return err
	}

	s.logger.Info().Str("jobId", id).Str("collegeId", collegeID).Msg("Job posting deleted")
	return nil
}
