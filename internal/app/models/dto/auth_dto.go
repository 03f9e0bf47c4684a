package dto

import "github.com/campushire/placement-portal/internal/app/models"

// RegisterRequest represents a user registration request. Registration is
// public; non-admin accounts start unapproved.
type RegisterRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	FullName   string `json:"fullName" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=student moderator admin"`
	CollegeID  string `json:"collegeId" binding:"required"`
	Department string `json:"department"`
}

// LoginRequest represents login credentials. Username is only unique within a
// college, so the college must be named alongside it.
type LoginRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	CollegeID string `json:"collegeId" binding:"required"`
}

// TokenResponse represents a successful login: session token plus the
// authenticated user.
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int64        `json:"expiresIn"`
	User        UserResponse `json:"user"`
}

// ForgotPasswordRequest represents a password reset request
type ForgotPasswordRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	CollegeID string `json:"collegeId" binding:"required"`
}

// ForgotPasswordResponse carries the generated reset token. In production the
// token would be delivered by email rather than returned in the response.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
	Email      string `json:"email,omitempty"`
}

// ResetPasswordRequest represents a password reset using a reset token
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	CollegeID   string `json:"collegeId" binding:"required"`
	ResetToken  string `json:"resetToken" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangePasswordRequest represents a password change by an authenticated user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserResponse represents user information returned by the API
type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	CollegeID  string `json:"collegeId"`
	Department string `json:"department"`
	IsActive   bool   `json:"isActive"`
	IsApproved bool   `json:"isApproved"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       string(user.Role),
		CollegeID:  user.CollegeID,
		Department: user.Department,
		IsActive:   user.IsActive,
		IsApproved: user.IsApproved,
	}
}
