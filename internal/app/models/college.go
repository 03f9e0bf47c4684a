package models

import (
	"time"
)

// College defines the tenant root based on the 'colleges' table. Every user,
// job and application belongs to exactly one college.
type College struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"` // Unique across all colleges
	Location  string    `json:"location" db:"location"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
