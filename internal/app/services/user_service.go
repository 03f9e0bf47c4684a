package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushire/placement-portal/internal/app/auth"
	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/app/repositories"
)

// UserService handles admin-facing user management
type UserService struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUsers lists users of the caller's college with optional role filtering
func (s *UserService) GetUsers(ctx context.Context, collegeID string, role models.RoleType, filterRole *models.RoleType, page, pageSize int) ([]models.User, int64, error) {
	if err := auth.Require(role, auth.OpListUsers); err != nil {
		return nil, 0, err
	}

	return s.userRepo.GetAll(ctx, collegeID, filterRole, page, pageSize)
}

// GetUserByID retrieves one user of the caller's college
func (s *UserService) GetUserByID(ctx context.Context, id, collegeID string, role models.RoleType) (*models.User, error) {
	if err := auth.Require(role, auth.OpListUsers); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, id, collegeID)
}

// ApproveUser sets the approval flag of a user in the caller's college
func (s *UserService) ApproveUser(ctx context.Context, id, collegeID string, role models.RoleType, approved bool) (*models.User, error) {
	if err := auth.Require(role, auth.OpApproveUser); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetApproval(ctx, id, collegeID, approved); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", id).Bool("approved", approved).Msg("User approval updated")
	return s.userRepo.GetByID(ctx, id, collegeID)
}

// SetUserStatus activates or deactivates a user in the caller's college
func (s *UserService) SetUserStatus(ctx context.Context, id, collegeID string, role models.RoleType, active bool) (*models.User, error) {
	if err := auth.Require(role, auth.OpDeactivateUser); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetActive(ctx, id, collegeID, active); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", id).Bool("active", active).Msg("User status updated")
	return s.userRepo.GetByID(ctx, id, collegeID)
}

// DeleteUser removes a user and their credential from the caller's college
func (s *UserService) DeleteUser(ctx context.Context, id, collegeID string, role models.RoleType) error {
	if err := auth.Require(role, auth.OpDeleteUser); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id, collegeID); err != nil {
		return err
	}

	s.logger.Info().Str("userId", id).Str("collegeId", collegeID).Msg("User deleted")
	return nil
}
