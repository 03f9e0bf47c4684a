package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         string    `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"` // Unique within a college
	Email      string    `json:"email" db:"email"`       // Unique globally
	FullName   string    `json:"fullName" db:"full_name"`
	Role       RoleType  `json:"role" db:"role"`
	CollegeID  string    `json:"collegeId" db:"college_id"`
	Department string    `json:"department" db:"department"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	IsApproved bool      `json:"isApproved" db:"is_approved"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
