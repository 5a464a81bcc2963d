package controllers

import (
	"admission-api/config"
	"admission-api/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReviewRequest struct {
	Status          string  `json:"status" binding:"required"`
	RejectionReason *string `json:"rejection_reason"`
}

// ReviewDocument applies a staff approve/reject decision to one document.
// The document update and the application status recomputation commit
// together or not at all.
func ReviewDocument(c *gin.Context) {
	documentID, err := strconv.Atoi(c.Param("document_id"))
	if err != nil || documentID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviewerID, _ := c.Get("userID")

	result, err := services.ReviewDocument(config.DB, services.ReviewInput{
		DocumentID: documentID,
		Status:     req.Status,
		Reason:     req.RejectionReason,
		ReviewerID: reviewerID.(int),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"document":           result.Document,
		"application_status": result.ApplicationStatus,
	})
}
