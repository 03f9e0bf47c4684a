package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-portal/internal/app/controllers"
	"github.com/campushire/placement-portal/internal/middleware"
)

// SetupRouter configures all application routes. Role checks beyond
// authentication live in the services, next to the business rules they
// protect, so the route table only distinguishes public from authenticated.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	collegeController *controllers.CollegeController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// College routes (public access)
	colleges := v1.Group("/colleges")
	{
		colleges.GET("", collegeController.GetColleges)
		colleges.GET("/:id", collegeController.GetCollegeByID)
		colleges.POST("", collegeController.CreateCollege)
		colleges.DELETE("/:id", collegeController.DeleteCollege)
	}

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// Authenticated routes
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetCurrentUser)
		authenticated.POST("/auth/change-password", authController.ChangePassword)

		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobController.GetJobs)
			jobs.GET("/:id", jobController.GetJobByID)
			jobs.POST("", jobController.CreateJob)
			jobs.PUT("/:id", jobController.UpdateJob)
			jobs.DELETE("/:id", jobController.DeleteJob)
		}

		applications := authenticated.Group("/applications")
		{
			applications.GET("", applicationController.GetApplications)
			applications.GET("/:id", applicationController.GetApplicationByID)
			applications.POST("", applicationController.CreateApplication)
			applications.PUT("/:id/status", applicationController.UpdateApplicationStatus)
		}

		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetUsers)
			users.GET("/:id", userController.GetUserByID)
			users.PUT("/:id/approve", userController.ApproveUser)
			users.PUT("/:id/status", userController.UpdateUserStatus)
			users.DELETE("/:id", userController.DeleteUser)
		}
	}
}
