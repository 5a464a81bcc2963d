package controllers

import (
	"admission-api/config"
	"admission-api/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// SubmitDecision records the applicant's phase-3 confirm/withdraw choice,
// scoped to their own application.
func SubmitDecision(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := services.RecordDecision(config.DB, userID.(int), req.Decision)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"message":            "Decision saved successfully",
		"application_status": application.ApplicationStatus,
	})
}
