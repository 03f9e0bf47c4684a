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

// JobController handles job posting endpoints
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// CreateJob handles POST /jobs
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, role, collegeID := middleware.CallerIdentity(ctx)
	job, err := c.jobService.CreateJob(ctx, userID, collegeID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      job,
		Timestamp: time.Now(),
	})
}

// GetJobs handles GET /jobs with optional ?status= filtering
func (c *JobController) GetJobs(ctx *gin.Context) {
	_, _, collegeID := middleware.CallerIdentity(ctx)

	var status *models.JobStatus
	if statusStr := ctx.Query("status"); statusStr != "" {
		if !models.ValidJobStatus(statusStr) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job status filter").WithField("status")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		s := models.JobStatus(statusStr)
		status = &s
	}

	page, size := helpers.ParsePaginationParams(ctx)
	jobs, total, err := c.jobService.GetJobs(ctx, collegeID, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.JobListResponse{
			Jobs:       jobs,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetJobByID handles GET /jobs/:id
func (c *JobController) GetJobByID(ctx *gin.Context) {
	_, _, collegeID := middleware.CallerIdentity(ctx)

	job, err := c.jobService.GetJobByID(ctx, ctx.Param("id"), collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      job,
		Timestamp: time.Now(),
	})
}

// UpdateJob handles PUT /jobs/:id
func (c *JobController) UpdateJob(ctx *gin.Context) {
	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	_, role, collegeID := middleware.CallerIdentity(ctx)
	job, err := c.jobService.UpdateJob(ctx, ctx.Param("id"), collegeID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      job,
		Timestamp: time.Now(),
	})
}

// DeleteJob handles DELETE /jobs/:id
func (c *JobController) DeleteJob(ctx *gin.Context) {
	_, role, collegeID := middleware.CallerIdentity(ctx)

	if err := c.jobService.DeleteJob(ctx, ctx.Param("id"), collegeID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Job deleted successfully"},
		Timestamp: time.Now(),
	})
}
