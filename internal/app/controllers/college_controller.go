package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/app/services"
	"github.com/campushire/placement-portal/internal/middleware"
)

// CollegeController handles college endpoints
type CollegeController struct {
	collegeService *services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService *services.CollegeService) *CollegeController {
	return &CollegeController{collegeService: collegeService}
}

// CreateCollege handles POST /colleges
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	college, err := c.collegeService.CreateCollege(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      college,
		Timestamp: time.Now(),
	})
}

// GetColleges handles GET /colleges
func (c *CollegeController) GetColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      colleges,
		Timestamp: time.Now(),
	})
}

// GetCollegeByID handles GET /colleges/:id
func (c *CollegeController) GetCollegeByID(ctx *gin.Context) {
	college, err := c.collegeService.GetCollegeByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      college,
		Timestamp: time.Now(),
	})
}

// DeleteCollege handles DELETE /colleges/:id
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	if err := c.collegeService.DeleteCollege(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "College deleted successfully"},
		Timestamp: time.Now(),
	})
}
