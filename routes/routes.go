package routes

import (
	"admission-api/controllers"
	"admission-api/middleware"
	"admission-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Roster lookup for the sign-up page
			public.GET("/applicants/:national_id", controllers.LookupApplicant)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Admission API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.PUT("/change-password", controllers.ChangePassword)

			// Applicant's own application and documents
			protected.GET("/me", controllers.GetMyApplication)
			protected.POST("/documents/upload", controllers.UploadDocument)
			protected.GET("/documents/view/:document_id", controllers.ViewDocument)

			// Phase-3 confirm/withdraw decision
			protected.POST("/decision", controllers.SubmitDecision)

			// Admin only
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/academic-years", controllers.CreateAcademicYear)
				admin.GET("/academic-years", controllers.GetAcademicYears)
				admin.PUT("/academic-years/:id/activate", controllers.ActivateAcademicYear)

				admin.GET("/phase2/applicants", controllers.GetPhase2Applicants)
				admin.GET("/phase3/applicants", controllers.GetPhase3Applicants)
				admin.GET("/applicants/:id", controllers.GetApplicant)

				admin.POST("/phase2/import-seating", controllers.ImportSeating)
				admin.POST("/phase3/import-results", controllers.ImportResults)
				admin.POST("/phase3/mark-no-action", controllers.MarkNoAction)

				admin.PUT("/documents/:document_id", controllers.ReviewDocument)
			}
		}
	}
}
