package services

import (
	"admission-api/config"
	"admission-api/models"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// WindowState classifies a phase's submission window relative to a point
// in time.
type WindowState string

const (
	// WindowUndefined means the phase has no configured window yet. All
	// applicant actions are blocked until the dates are announced.
	WindowUndefined WindowState = "undefined"
	WindowUpcoming  WindowState = "not_yet_open"
	WindowOpen      WindowState = "open"
	WindowClosed    WindowState = "closed"
)

// ClassifyWindow decides whether a window is open at the given time. Both
// timestamps must be present for the window to count as configured, and
// the boundaries are inclusive.
func ClassifyWindow(now time.Time, start, end *time.Time) WindowState {
	if start == nil || end == nil {
		return WindowUndefined
	}
	if now.Before(*start) {
		return WindowUpcoming
	}
	if now.After(*end) {
		return WindowClosed
	}
	return WindowOpen
}

// PhaseWindowState classifies the given phase window of an academic year.
func PhaseWindowState(year *models.AcademicYear, phase int, now time.Time) WindowState {
	if year == nil {
		return WindowUndefined
	}
	start, end := year.PhaseWindow(phase)
	return ClassifyWindow(now, start, end)
}

// ActiveAcademicYear returns the single active cycle, or ErrNotFound when
// no cycle is active.
func ActiveAcademicYear(db *gorm.DB) (*models.AcademicYear, error) {
	if db == nil {
		db = config.DB
	}
	var year models.AcademicYear
	if err := db.Where("is_active = ?", true).First(&year).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no active academic year: %w", ErrNotFound)
		}
		return nil, err
	}
	return &year, nil
}
