package dto

import "github.com/campushire/placement-portal/internal/app/models"

// CreateApplicationRequest represents a student's application to a job posting
type CreateApplicationRequest struct {
	JobID string `json:"jobId" binding:"required,uuid"`
}

// UpdateApplicationStatusRequest represents an application status decision
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted rejected"`
}

// ApplicationListResponse represents a paginated list of applications
type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
	Pagination   PaginationInfo       `json:"pagination"`
}
