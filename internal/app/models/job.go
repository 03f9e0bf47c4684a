package models

import (
	"time"
)

// JobSkills is the set of named skill flags attached to a job posting.
type JobSkills struct {
	WirelessCommunication bool `json:"wirelessCommunication"`
	FullstackDeveloper    bool `json:"fullstackDeveloper"`
	Embedded              bool `json:"embedded"`
	VLSI                  bool `json:"vlsi"`
	Cybersecurity         bool `json:"cybersecurity"`
	Cloud                 bool `json:"cloud"`
	Networking            bool `json:"networking"`
	Blockchain            bool `json:"blockchain"`
	Others                bool `json:"others"`
}

// JobPosting defines a job posting scoped to one college.
type JobPosting struct {
	ID                string     `json:"id" db:"id"`
	CollegeID         string     `json:"collegeId" db:"college_id"`
	CompanyName       string     `json:"companyName" db:"company_name"`
	Location          string     `json:"location" db:"location"`
	JobCategory       string     `json:"jobCategory" db:"job_category"`
	JobDescription    string     `json:"jobDescription" db:"job_description"`
	TermsConditions   string     `json:"termsConditions" db:"terms_conditions"`
	TenthPercentage   float64    `json:"tenthPercentage" db:"tenth_percentage"`
	TwelfthPercentage float64    `json:"twelfthPercentage" db:"twelfth_percentage"`
	CGPA              float64    `json:"cgpa" db:"cgpa"`
	Skills            JobSkills  `json:"skills" db:"skills"`
	OtherSkill        string     `json:"otherSkill" db:"other_skill"`
	Deadline          *time.Time `json:"deadline,omitempty" db:"deadline"`
	Status            JobStatus  `json:"status" db:"status"`
	CreatedBy         *string    `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
}

// DeadlineElapsed reports whether the posting has a deadline that lies before now.
func (j *JobPosting) DeadlineElapsed(now time.Time) bool {
	return j.Deadline != nil && j.Deadline.Before(now)
}

// AcceptsApplications reports whether the posting can take a new application
// at the given instant: status must be active and the deadline, if set, must
// not have passed.
func (j *JobPosting) AcceptsApplications(now time.Time) bool {
	return j.Status == JobStatusActive && !j.DeadlineElapsed(now)
}
