package services

import (
	"admission-api/config"
	"admission-api/models"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordDecision stores the applicant's one-shot confirm/withdraw choice
// for phase 3. The decision is a one-way gate: once the status has left
// AWAITING_PHASE3_DECISION any further call fails rather than overwriting.
func RecordDecision(db *gorm.DB, userID int, decision string) (*models.Application, error) {
	if db == nil {
		db = config.DB
	}

	if decision != models.StatusConfirmed && decision != models.StatusWithdrawn {
		return nil, fmt.Errorf("decision must be CONFIRMED or WITHDRAWN: %w", ErrValidation)
	}

	var app models.Application
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&app).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("application for user %d: %w", userID, ErrNotFound)
			}
			return err
		}

		var year models.AcademicYear
		if err := tx.First(&year, app.AcademicYearID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("academic year %d: %w", app.AcademicYearID, ErrNotFound)
			}
			return err
		}

		if state := PhaseWindowState(&year, 3, time.Now()); state != WindowOpen {
			return fmt.Errorf("phase-3 window is %s: %w", state, ErrStateConflict)
		}

		if app.ApplicationStatus != models.StatusAwaitingPhase3Decision {
			return fmt.Errorf("application is %s, not awaiting a decision: %w",
				app.ApplicationStatus, ErrStateConflict)
		}

		// CONFIRMED continues into document review; WITHDRAWN is terminal
		// regardless of any document review outcome.
		return writeStatusChange(tx, &app, decision, &userID, nil)
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// MarkNoAction flips every applicant of the active cycle still awaiting a
// phase-3 decision to NO_ACTION. Deliberately a manual admin sweep, not a
// timer: it refuses to run until the phase-3 window has closed.
func MarkNoAction(db *gorm.DB, adminID int) (int, error) {
	if db == nil {
		db = config.DB
	}

	count := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		year, err := ActiveAcademicYear(tx)
		if err != nil {
			return err
		}

		if state := PhaseWindowState(year, 3, time.Now()); state != WindowClosed {
			return fmt.Errorf("phase-3 window is %s, sweep requires it closed: %w", state, ErrStateConflict)
		}

		var apps []models.Application
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("academic_year_id = ? AND application_status = ?",
				year.AcademicYearID, models.StatusAwaitingPhase3Decision).
			Find(&apps).Error; err != nil {
			return err
		}

		for i := range apps {
			if err := writeStatusChange(tx, &apps[i], models.StatusNoAction, &adminID, nil); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
