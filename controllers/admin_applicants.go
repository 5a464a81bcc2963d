package controllers

import (
	"admission-api/config"
	"admission-api/models"
	"admission-api/services"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var phase2Statuses = []string{
	models.StatusAwaitingPhase2Docs,
	models.StatusPendingApproval,
	models.StatusIncorrectDocs,
	models.StatusEligibleForExam,
}

var phase3Statuses = []string{
	models.StatusAwaitingPhase3Decision,
	models.StatusWaitingList,
	models.StatusConfirmed,
	models.StatusWithdrawn,
	models.StatusEnrolled,
	models.StatusNoAction,
	models.StatusIncorrectDocs,
}

// GetPhase2Applicants lists the active cycle's applicants in the phase-2
// document round, optionally filtered by status.
func GetPhase2Applicants(c *gin.Context) {
	listApplicants(c, phase2Statuses, false)
}

// GetPhase3Applicants lists the active cycle's ranked applicants.
func GetPhase3Applicants(c *gin.Context) {
	listApplicants(c, phase3Statuses, true)
}

func listApplicants(c *gin.Context, statuses []string, rankedOnly bool) {
	year, err := services.ActiveAcademicYear(config.DB)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	query := config.DB.Preload("School").
		Preload("Documents").
		Where("academic_year_id = ?", year.AcademicYearID)

	if rankedOnly {
		query = query.Where("priority_rank IS NOT NULL")
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		valid := false
		for _, s := range statuses {
			if s == status {
				valid = true
				break
			}
		}
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		query = query.Where("application_status = ?", status)
	} else {
		query = query.Where("application_status IN ?", statuses)
	}

	if rankedOnly {
		query = query.Order("priority_rank ASC")
	} else {
		query = query.Order("last_name ASC, first_name ASC")
	}

	var applicants []models.Application
	if err := query.Find(&applicants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applicants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"applicants": applicants,
		"total":      len(applicants),
	})
}

// GetApplicant returns one application with full detail for staff review.
func GetApplicant(c *gin.Context) {
	applicationID, err := strconv.Atoi(c.Param("id"))
	if err != nil || applicationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	var application models.Application
	if err := config.DB.Preload("School").
		Preload("AcademicYear").
		Preload("Documents").
		First(&application, applicationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": application,
	})
}

// MarkNoAction closes out applicants who never decided within the
// phase-3 window. Manual admin action; refuses while the window is not
// yet closed.
func MarkNoAction(c *gin.Context) {
	adminID, _ := c.Get("userID")

	count, err := services.MarkNoAction(config.DB, adminID.(int))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Applicants without a decision marked NO_ACTION",
		"count":   count,
	})
}
