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

// ApplicationController handles job application endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// CreateApplication handles POST /applications
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, role, collegeID := middleware.CallerIdentity(ctx)
	application, err := c.applicationService.Apply(ctx, userID, collegeID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// GetApplications handles GET /applications with optional ?jobId= filtering
func (c *ApplicationController) GetApplications(ctx *gin.Context) {
	userID, role, collegeID := middleware.CallerIdentity(ctx)

	var jobID *string
	if jobIDStr := ctx.Query("jobId"); jobIDStr != "" {
		jobID = &jobIDStr
	}

	page, size := helpers.ParsePaginationParams(ctx)
	applications, total, err := c.applicationService.GetApplications(ctx, userID, collegeID, role, jobID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ApplicationListResponse{
			Applications: applications,
			Pagination:   helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetApplicationByID handles GET /applications/:id
func (c *ApplicationController) GetApplicationByID(ctx *gin.Context) {
	userID, role, collegeID := middleware.CallerIdentity(ctx)

	application, err := c.applicationService.GetApplicationByID(ctx, ctx.Param("id"), userID, collegeID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// UpdateApplicationStatus handles PUT /applications/:id/status
func (c *ApplicationController) UpdateApplicationStatus(ctx *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	_, role, collegeID := middleware.CallerIdentity(ctx)
	application, err := c.applicationService.UpdateApplicationStatus(
		ctx, ctx.Param("id"), collegeID, role, models.ApplicationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}
