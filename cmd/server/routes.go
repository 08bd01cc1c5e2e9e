package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pratham.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	eligibilityHandler *handlers.EligibilityHandler
	submissionHandler  *handlers.SubmissionHandler
	authHandler        *handlers.AuthHandler
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Public eligibility funnel
		eligibility := api.Group("/eligibility")
		{
			eligibility.POST("/submit", d.eligibilityHandler.Submit)
			eligibility.POST("/verify-otp", d.eligibilityHandler.VerifyOTP)
			eligibility.GET("/download-pdf/:id", d.eligibilityHandler.DownloadPDF)
		}

		api.POST("/send-report-email", d.eligibilityHandler.SendReportEmail)

		// Admin panel
		api.POST("/admin/login", d.authHandler.AdminLogin)

		submissions := api.Group("/submissions")
		{
			submissions.GET("", d.submissionHandler.List)
			submissions.POST("", d.submissionHandler.Create)
			submissions.GET("/:id", d.submissionHandler.Get)
			submissions.PATCH("/:id/status", d.submissionHandler.UpdateStatus)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		} else {
			c.Header("Access-Control-Allow-Origin", "*")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}
