package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/app/services"
	"github.com/campushire/placement-portal/internal/middleware"
	"github.com/campushire/placement-portal/internal/pkg/helpers"
)

// UserController handles admin user-management endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUsers handles GET /users with optional ?role= filtering
func (c *UserController) GetUsers(ctx *gin.Context) {
	_, role, collegeID := middleware.CallerIdentity(ctx)

	var filterRole *models.RoleType
	if roleStr := ctx.Query("role"); roleStr != "" {
		if !models.ValidRole(roleStr) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid role filter").WithField("role")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		r := models.RoleType(roleStr)
		filterRole = &r
	}

	page, size := helpers.ParsePaginationParams(ctx)
	users, total, err := c.userService.GetUsers(ctx, collegeID, role, filterRole, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.FromUser(&users[i]))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.UserListResponse{
			Users:      responses,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetUserByID handles GET /users/:id
func (c *UserController) GetUserByID(ctx *gin.Context) {
	_, role, collegeID := middleware.CallerIdentity(ctx)

	user, err := c.userService.GetUserByID(ctx, ctx.Param("id"), collegeID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromUser(user),
		Timestamp: time.Now(),
	})
}

// ApproveUser handles PUT /users/:id/approve
func (c *UserController) ApproveUser(ctx *gin.Context) {
	var req dto.ApproveUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	_, role, collegeID := middleware.CallerIdentity(ctx)
	user, err := c.userService.ApproveUser(ctx, ctx.Param("id"), collegeID, role, *req.IsApproved)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromUser(user),
		Timestamp: time.Now(),
	})
}

// UpdateUserStatus handles PUT /users/:id/status
func (c *UserController) UpdateUserStatus(ctx *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	_, role, collegeID := middleware.CallerIdentity(ctx)
	user, err := c.userService.SetUserStatus(ctx, ctx.Param("id"), collegeID, role, *req.IsActive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromUser(user),
		Timestamp: time.Now(),
	})
}

// DeleteUser handles DELETE /users/:id
func (c *UserController) DeleteUser(ctx *gin.Context) {
	_, role, collegeID := middleware.CallerIdentity(ctx)

	if err := c.userService.DeleteUser(ctx, ctx.Param("id"), collegeID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "User deleted successfully"},
		Timestamp: time.Now(),
	})
}
