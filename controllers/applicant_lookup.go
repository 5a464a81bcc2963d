package controllers

import (
	"admission-api/config"
	"admission-api/services"
	"admission-api/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LookupApplicant lets the sign-up page show an applicant their roster row
// before they choose a password. Public by design: it reveals nothing a
// holder of the national ID does not already know, and registered IDs are
// refused.
func LookupApplicant(c *gin.Context) {
	nationalID := c.Param("national_id")
	if !utils.ValidateNationalID(nationalID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "กรุณาระบุเลขบัตรประชาชนให้ถูกต้อง (13 หลัก)"})
		return
	}

	application, err := services.LookupApplicantByNationalID(config.DB, nationalID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "ไม่พบข้อมูลผู้สมัครในระบบ กรุณาตรวจสอบเลขบัตรประชาชน"})
		case errors.Is(err, services.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "เลขบัตรประชาชนนี้ได้ทำการลงทะเบียนไปแล้ว"})
		default:
			respondServiceError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": application,
	})
}
