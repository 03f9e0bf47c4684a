package dto

// ApproveUserRequest represents an admin approval decision for a user
type ApproveUserRequest struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

// UpdateUserStatusRequest represents an admin activation toggle for a user
type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
