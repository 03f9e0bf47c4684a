package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/app/repositories"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
	"github.com/campushire/placement-portal/internal/pkg/auth"
)

// forgotPasswordMessage is returned whether or not the account exists, so the
// endpoint does not reveal which emails are registered.
const forgotPasswordMessage = "If an account matches the given details, a password reset token has been issued"

// AuthService handles registration, login and the password lifecycle
type AuthService struct {
	userRepo       *repositories.UserRepository
	credentialRepo *repositories.CredentialRepository
	collegeRepo    *repositories.CollegeRepository
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	credentialRepo *repositories.CredentialRepository,
	collegeRepo *repositories.CollegeRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		collegeRepo:    collegeRepo,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Register creates a new user with a hashed credential. Admin accounts are
// approved immediately; students and moderators wait for an admin. Duplicate
// usernames and emails surface from the unique indexes, so there is no
// check-then-insert window.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	exists, err := s.collegeRepo.Exists(ctx, req.CollegeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCollegeNotFound
	}

	role := models.RoleType(req.Role)
	user := &models.User{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Role:       role,
		CollegeID:  req.CollegeID,
		Department: req.Department,
		IsActive:   true,
		IsApproved: role == models.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	credential := &models.Credential{
		UserID:       user.ID,
		PasswordHash: passwordHash,
	}
	if err := s.credentialRepo.Create(ctx, credential); err != nil {
		// A user without a credential can never log in; roll the insert back.
		if delErr := s.userRepo.Delete(ctx, user.ID, user.CollegeID); delErr != nil {
			s.logger.Error().Err(delErr).Str("userId", user.ID).Msg("Failed to clean up user after credential error")
		}
		return nil, err
	}

	s.logger.Info().
		Str("userId", user.ID).
		Str("collegeId", user.CollegeID).
		Str("role", string(user.Role)).
		Msg("User registered")

	return user, nil
}

// Login authenticates a user by username within a college and issues a
// session token. Unknown users and wrong passwords are indistinguishable to
// the caller; disabled and unapproved accounts are reported as such only
// after the account is located.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username, req.CollegeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	if !user.IsApproved {
		return nil, apperrors.ErrAccountPendingApproval
	}

	credential, err := s.credentialRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCredentialNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(credential.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateSessionToken(user.ID, string(user.Role), user.CollegeID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        dto.FromUser(user),
	}, nil
}

// GetCurrentUser returns the authenticated user's profile
func (s *AuthService) GetCurrentUser(ctx context.Context, userID, collegeID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID, collegeID)
}

// ForgotPassword issues a short-lived reset token when the email, username
// and college all match an account. The response is identical either way.
func (s *AuthService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	opaque := &dto.ForgotPasswordResponse{Message: forgotPasswordMessage}

	user, err := s.userRepo.GetByEmail(ctx, req.Email, req.CollegeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return opaque, nil
		}
		return nil, err
	}
	if user.Username != req.Username {
		return opaque, nil
	}

	token, err := s.jwtService.GenerateResetToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.credentialRepo.SetResetToken(ctx, user.ID, token, time.Now()); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", user.ID).Msg("Password reset token issued")

	// TODO: deliver the token by email once an SMTP gateway is configured.
	return &dto.ForgotPasswordResponse{
		Message:    forgotPasswordMessage,
		ResetToken: token,
		Email:      user.Email,
	}, nil
}

// ResetPassword sets a new password for a user presenting a valid reset
// token. The token must match the one most recently stored for the account
// and is consumed by the update, so it cannot be replayed.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateResetToken(req.ResetToken)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email, req.CollegeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return err
	}
	if user.ID != claims.UserID {
		return apperrors.ErrInvalidResetToken
	}

	credential, err := s.credentialRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCredentialNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return err
	}
	if credential.ResetToken == nil || *credential.ResetToken != req.ResetToken {
		return apperrors.ErrInvalidResetToken
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.credentialRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return err
	}

	s.logger.Info().Str("userId", user.ID).Msg("Password reset completed")
	return nil
}

// ChangePassword replaces the password of an authenticated user after
// verifying the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	credential, err := s.credentialRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(credential.PasswordHash, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.credentialRepo.UpdatePassword(ctx, userID, passwordHash)
}
