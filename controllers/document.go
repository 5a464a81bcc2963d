package controllers

import (
	"admission-api/config"
	"admission-api/models"
	"admission-api/services"
	"admission-api/utils"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var allowedDocumentExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// UploadDocument accepts one document for the applicant's own application.
// Uploads are only accepted while the document type's phase window is
// open, and only when no un-rejected document of the same type exists.
func UploadDocument(c *gin.Context) {
	userID, _ := c.Get("userID")

	var application models.Application
	if err := config.DB.Preload("AcademicYear").
		Where("user_id = ?", userID).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	documentType := strings.TrimSpace(c.PostForm("document_type"))
	if !models.IsValidDocumentType(documentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document type"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	maxSize := int64(10 * 1024 * 1024) // 10MB
	if file.Size > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedDocumentExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	// Applicants are time-boxed to the phase window; boundaries inclusive.
	phase := models.DocumentPhase(documentType)
	state := services.PhaseWindowState(&application.AcademicYear, phase, time.Now())
	if state != services.WindowOpen {
		message := "อยู่นอกช่วงเวลาการส่งเอกสาร"
		if start, end := application.AcademicYear.PhaseWindow(phase); start != nil && end != nil {
			message = fmt.Sprintf("อยู่นอกช่วงเวลาการส่งเอกสาร (เปิดรับ %s ถึง %s)",
				utils.FormatThaiDatePtr(start), utils.FormatThaiDatePtr(end))
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":        message,
			"window_state": state,
		})
		return
	}

	userDir := filepath.Join(utils.UploadPath(), strconv.Itoa(userID.(int)))
	if err := os.MkdirAll(userDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	storedName := utils.DocumentStoredName(documentType, file.Filename)
	fullPath := filepath.Join(userDir, storedName)

	// The file must be on disk before any row exists that points at it.
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	document, err := services.UpsertDocument(config.DB, services.UpsertDocumentInput{
		ApplicationID: application.ApplicationID,
		DocumentType:  documentType,
		OriginalName:  file.Filename,
		StoredPath:    fullPath,
		UploadedBy:    userID.(int),
	})
	if err != nil {
		// Keep storage and database in step when the upsert is refused.
		os.Remove(fullPath)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "File uploaded successfully",
		"document": document,
	})
}

// ViewDocument streams a stored document. Applicants may only fetch their
// own files; admins may fetch any.
func ViewDocument(c *gin.Context) {
	documentID := c.Param("document_id")
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	var document models.Document
	if err := config.DB.Preload("Application").
		Where("document_id = ?", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if role.(string) != models.RoleAdmin {
		owner := document.Application
		if owner == nil || owner.UserID == nil || *owner.UserID != userID.(int) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
	}

	if _, err := os.Stat(document.StoredPath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", document.OriginalName))
	c.Header("Content-Type", "application/octet-stream")
	c.File(document.StoredPath)
}
