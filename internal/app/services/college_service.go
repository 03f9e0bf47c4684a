package services

import (
	"context"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/app/repositories"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
)

// CollegeService handles college (tenant) operations
type CollegeService struct {
	collegeRepo *repositories.CollegeRepository
	userRepo    *repositories.UserRepository
	jobRepo     *repositories.JobRepository
}

// NewCollegeService creates a new CollegeService
func NewCollegeService(
	collegeRepo *repositories.CollegeRepository,
	userRepo *repositories.UserRepository,
	jobRepo *repositories.JobRepository,
) *CollegeService {
	return &CollegeService{
		collegeRepo: collegeRepo,
		userRepo:    userRepo,
		jobRepo:     jobRepo,
	}
}

// CreateCollege registers a new college
func (s *CollegeService) CreateCollege(ctx context.Context, req *dto.CreateCollegeRequest) (*models.College, error) {
	college := &models.College{
		Name:     req.Name,
		Code:     req.Code,
		Location: req.Location,
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}

	return college, nil
}

// GetColleges retrieves all colleges
func (s *CollegeService) GetColleges(ctx context.Context) ([]models.College, error) {
	return s.collegeRepo.GetAll(ctx)
}

// GetCollegeByID retrieves a college by ID
func (s *CollegeService) GetCollegeByID(ctx context.Context, id string) (*models.College, error) {
	return s.collegeRepo.GetByID(ctx, id)
}

// DeleteCollege removes a college. A college with users or job postings
// cannot be deleted; dependents must go first.
func (s *CollegeService) DeleteCollege(ctx context.Context, id string) error {
	if _, err := s.collegeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	userCount, err := s.userRepo.CountByCollege(ctx, id)
	if err != nil {
		return err
	}
	if userCount > 0 {
		return apperrors.ErrCollegeHasUsers
	}

	jobCount, err := s.jobRepo.CountByCollege(ctx, id)
	if err != nil {
		return err
	}
	if jobCount > 0 {
		return apperrors.ErrCollegeHasJobs
	}

	return s.collegeRepo.Delete(ctx, id)
}
