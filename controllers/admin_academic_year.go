package controllers

import (
	"admission-api/config"
	"admission-api/models"
	"admission-api/services"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CreateAcademicYear sets up a new admissions cycle from a multipart form
// carrying the cycle fields plus the roster spreadsheet.
func CreateAcademicYear(c *gin.Context) {
	year, err := strconv.Atoi(c.PostForm("year"))
	if err != nil || year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	isActive := c.PostForm("is_active") == "true"

	phase2Start, ok := parseWindowField(c, "phase2_start_date")
	if !ok {
		return
	}
	phase2End, ok := parseWindowField(c, "phase2_end_date")
	if !ok {
		return
	}
	phase3Start, ok := parseWindowField(c, "phase3_start_date")
	if !ok {
		return
	}
	phase3End, ok := parseWindowField(c, "phase3_end_date")
	if !ok {
		return
	}

	rows, ok := saveImportFile(c, "roster_file", "rosters")
	if !ok {
		return
	}

	records, err := services.ParseRosterRows(rows)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	created, imported, err := services.CreateAcademicYearWithRoster(config.DB, services.CreateAcademicYearInput{
		Year:            year,
		Name:            name,
		IsActive:        isActive,
		Phase2StartDate: phase2Start,
		Phase2EndDate:   phase2End,
		Phase3StartDate: phase3Start,
		Phase3EndDate:   phase3End,
		Rows:            records,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":           true,
		"message":           "Academic year created and roster imported successfully",
		"academic_year":     created,
		"students_imported": imported,
	})
}

// parseWindowField reads an optional phase window timestamp from the form.
func parseWindowField(c *gin.Context, field string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil, true
	}

	layouts := []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &t, true
		}
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s", field)})
	return nil, false
}

// GetAcademicYears lists all cycles, newest first.
func GetAcademicYears(c *gin.Context) {
	var years []models.AcademicYear
	if err := config.DB.Order("year DESC").Find(&years).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch academic years"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"academic_years": years,
		"total":          len(years),
	})
}

// ActivateAcademicYear makes one cycle the live one; every other cycle is
// deactivated in the same transaction.
func ActivateAcademicYear(c *gin.Context) {
	academicYearID, err := strconv.Atoi(c.Param("id"))
	if err != nil || academicYearID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid academic year ID"})
		return
	}

	year, err := services.ActivateAcademicYear(config.DB, academicYearID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Academic year activated",
		"academic_year": year,
	})
}
