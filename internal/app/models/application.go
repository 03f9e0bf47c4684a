package models

import (
	"time"
)

// Application defines a student's application to a job posting. At most one
// application may exist per (job, student) pair.
type Application struct {
	ID           string            `json:"id" db:"id"`
	JobID        string            `json:"jobId" db:"job_id"`
	StudentID    string            `json:"studentId" db:"student_id"`
	StudentName  string            `json:"studentName" db:"student_name"`
	StudentEmail string            `json:"studentEmail" db:"student_email"`
	CollegeID    string            `json:"collegeId" db:"college_id"`
	AppliedAt    time.Time         `json:"appliedAt" db:"applied_at"`
	Status       ApplicationStatus `json:"status" db:"status"`
}
