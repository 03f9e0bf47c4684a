package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobPostingDeadlineElapsed(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("no deadline never elapses", func(t *testing.T) {
		job := &JobPosting{Status: JobStatusActive}
		assert.False(t, job.DeadlineElapsed(now))
	})

	t.Run("past deadline elapsed", func(t *testing.T) {
		job := &JobPosting{Status: JobStatusActive, Deadline: &past}
		assert.True(t, job.DeadlineElapsed(now))
	})

	t.Run("future deadline not elapsed", func(t *testing.T) {
		job := &JobPosting{Status: JobStatusActive, Deadline: &future}
		assert.False(t, job.DeadlineElapsed(now))
	})
}

func TestJobPostingAcceptsApplications(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name     string
		status   JobStatus
		deadline *time.Time
		want     bool
	}{
		{"active without deadline", JobStatusActive, nil, true},
		{"active before deadline", JobStatusActive, &future, true},
		{"active after deadline", JobStatusActive, &past, false},
		{"inactive", JobStatusInactive, &future, false},
		{"closed", JobStatusClosed, nil, false},
		{"draft", JobStatusDraft, &future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &JobPosting{Status: tt.status, Deadline: tt.deadline}
			assert.Equal(t, tt.want, job.AcceptsApplications(now))
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("student"))
	assert.True(t, ValidRole("moderator"))
	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("superadmin"))
	assert.False(t, ValidRole(""))
}

func TestValidApplicationStatus(t *testing.T) {
	assert.True(t, ValidApplicationStatus("pending"))
	assert.True(t, ValidApplicationStatus("accepted"))
	assert.True(t, ValidApplicationStatus("rejected"))
	assert.False(t, ValidApplicationStatus("withdrawn"))
}
