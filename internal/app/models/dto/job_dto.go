package dto

import (
	"time"

	"github.com/campushire/placement-portal/internal/app/models"
)

// CreateJobRequest represents a job posting creation request. The college and
// creator are taken from the caller's token, never from the payload.
type CreateJobRequest struct {
	CompanyName       string           `json:"companyName" binding:"required"`
	Location          string           `json:"location" binding:"required"`
	JobCategory       string           `json:"jobCategory" binding:"required"`
	JobDescription    string           `json:"jobDescription" binding:"required"`
	TermsConditions   string           `json:"termsConditions" binding:"required"`
	TenthPercentage   float64          `json:"tenthPercentage" binding:"min=0,max=100"`
	TwelfthPercentage float64          `json:"twelfthPercentage" binding:"min=0,max=100"`
	CGPA              float64          `json:"cgpa" binding:"min=0,max=10"`
	Skills            models.JobSkills `json:"skills"`
	OtherSkill        string           `json:"otherSkill"`
	Deadline          time.Time        `json:"deadline" binding:"required"`
	Status            string           `json:"status" binding:"omitempty,oneof=draft active inactive closed"`
}

// UpdateJobRequest represents a partial job posting update. Only fields
// present in the payload are written.
type UpdateJobRequest struct {
	CompanyName       *string           `json:"companyName"`
	Location          *string           `json:"location"`
	JobCategory       *string           `json:"jobCategory"`
	JobDescription    *string           `json:"jobDescription"`
	TermsConditions   *string           `json:"termsConditions"`
	TenthPercentage   *float64          `json:"tenthPercentage" binding:"omitempty,min=0,max=100"`
	TwelfthPercentage *float64          `json:"twelfthPercentage" binding:"omitempty,min=0,max=100"`
	CGPA              *float64          `json:"cgpa" binding:"omitempty,min=0,max=10"`
	Skills            *models.JobSkills `json:"skills"`
	OtherSkill        *string           `json:"otherSkill"`
	Deadline          *time.Time        `json:"deadline"`
	Status            *string           `json:"status" binding:"omitempty,oneof=draft active inactive closed"`
}

// JobListResponse represents a paginated list of job postings
type JobListResponse struct {
	Jobs       []models.JobPosting `json:"jobs"`
	Pagination PaginationInfo      `json:"pagination"`
}
