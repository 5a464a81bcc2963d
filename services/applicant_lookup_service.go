package services

import (
	"admission-api/config"
	"admission-api/models"
	"fmt"

	"gorm.io/gorm"
)

// LookupApplicantByNationalID resolves a roster row for the sign-up page
// before an account exists. Fails with a conflict once a user account is
// attached so the applicant is told to log in instead.
func LookupApplicantByNationalID(db *gorm.DB, nationalID string) (*models.Application, error) {
	if db == nil {
		db = config.DB
	}

	var application models.Application
	err := db.Preload("School").
		Where("national_id = ?", nationalID).
		First(&application).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no application with national ID %s: %w", nationalID, ErrNotFound)
		}
		return nil, err
	}

	if application.UserID != nil {
		return nil, fmt.Errorf("national ID %s is already registered: %w", nationalID, ErrConflict)
	}
	return &application, nil
}
