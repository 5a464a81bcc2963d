package controllers

import (
	"admission-api/config"
	"admission-api/models"
	"admission-api/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetMyApplication returns the authenticated applicant's own application
// together with school, cycle, documents and the current window states.
func GetMyApplication(c *gin.Context) {
	userID, _ := c.Get("userID")

	var application models.Application
	if err := config.DB.Preload("School").
		Preload("AcademicYear").
		Preload("Documents").
		Where("user_id = ?", userID).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"application":   application,
		"phase2_window": services.PhaseWindowState(&application.AcademicYear, 2, now),
		"phase3_window": services.PhaseWindowState(&application.AcademicYear, 3, now),
	})
}
