package dto

// CreateCollegeRequest represents a college creation request
type CreateCollegeRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Location string `json:"location" binding:"required"`
}
