package controllers

import (
	"admission-api/config"
	"admission-api/services"
	"admission-api/utils"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
)

var allowedImportMimeTypes = map[string]string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
}

var importExtensionToMime = map[string]string{
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// saveImportFile stores an uploaded spreadsheet under uploads/import_runs
// and returns its rows. Import files are kept on disk so a failed batch
// can be inspected afterwards.
func saveImportFile(c *gin.Context, field, subdir string) ([][]string, bool) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ไฟล์นำเข้าจำเป็นต้องระบุ"})
		return nil, false
	}
	defer file.Close()

	if _, ok := utils.CanonicalMime(header.Header.Get("Content-Type"), header.Filename,
		allowedImportMimeTypes, importExtensionToMime); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ประเภทไฟล์ไม่รองรับ กรุณาใช้ .xlsx"})
		return nil, false
	}
	if header.Size > 20*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ไฟล์มีขนาดใหญ่เกิน 20MB"})
		return nil, false
	}

	uploadDir := filepath.Join(utils.UploadPath(), "import_runs", subdir)
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ไม่สามารถสร้างโฟลเดอร์อัปโหลดได้"})
		return nil, false
	}

	safeName := utils.GenerateUniqueFilename(uploadDir, header.Filename)
	dstPath := filepath.Join(uploadDir, safeName)
	if err := c.SaveUploadedFile(header, dstPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ไม่สามารถบันทึกไฟล์นำเข้าได้"})
		return nil, false
	}

	rows, err := utils.ReadXLSXRows(dstPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "อ่านข้อมูลจากไฟล์ไม่สำเร็จ"})
		return nil, false
	}
	return rows, true
}

// ImportSeating bulk-assigns exam venue/room/seat from a spreadsheet.
// The whole batch commits or rolls back as one.
func ImportSeating(c *gin.Context) {
	rows, ok := saveImportFile(c, "file", "seating")
	if !ok {
		return
	}

	records, err := services.ParseSeatingRows(rows)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := services.ImportSeating(config.DB, records)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("อัปเดตข้อมูลห้องสอบสำเร็จ %d รายการ", updated),
		"count":   updated,
	})
}

// ImportResults bulk-assigns phase-3 ranks from an ordered spreadsheet of
// national IDs. Rank follows row order; rows past the primary quota go to
// the waiting list.
func ImportResults(c *gin.Context) {
	rows, ok := saveImportFile(c, "file", "results")
	if !ok {
		return
	}

	nationalIDs, err := services.ParseResultRows(rows)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	primaryQuota := services.DefaultPrimaryQuota
	if raw := c.PostForm("primary_quota"); raw != "" {
		q, err := strconv.Atoi(raw)
		if err != nil || q <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid primary_quota"})
			return
		}
		primaryQuota = q
	}

	updated, err := services.ImportResults(config.DB, nationalIDs, primaryQuota)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("อัปเดตผลการคัดเลือก (เฟส 3) สำเร็จ %d รายการ", updated),
		"count":   updated,
	})
}
