package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "student"
	RoleModerator RoleType = "moderator"
	RoleAdmin     RoleType = "admin"
)

// ValidRole reports whether the given value is a known role.
func ValidRole(role string) bool {
	switch RoleType(role) {
	case RoleStudent, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// JobStatus defines the lifecycle state of a job posting
type JobStatus string

const (
	JobStatusDraft    JobStatus = "draft"
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusClosed   JobStatus = "closed"
)

// ValidJobStatus reports whether the given value is a known job status.
func ValidJobStatus(status string) bool {
	switch JobStatus(status) {
	case JobStatusDraft, JobStatusActive, JobStatusInactive, JobStatusClosed:
		return true
	}
	return false
}

// ApplicationStatus defines the state of a job application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether the given value is a known application status.
func ValidApplicationStatus(status string) bool {
	switch ApplicationStatus(status) {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
