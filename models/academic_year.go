package models

import "time"

// AcademicYear holds the submission windows for one admissions cycle.
// At most one row is active at a time; activating a year deactivates the
// others in the same transaction.
type AcademicYear struct {
	AcademicYearID  int        `gorm:"primaryKey;column:academic_year_id" json:"academic_year_id"`
	Year            int        `gorm:"column:year;unique" json:"year"`
	Name            string     `gorm:"column:name" json:"name"`
	IsActive        bool       `gorm:"column:is_active" json:"is_active"`
	Phase2StartDate *time.Time `gorm:"column:phase2_start_date" json:"phase2_start_date,omitempty"`
	Phase2EndDate   *time.Time `gorm:"column:phase2_end_date" json:"phase2_end_date,omitempty"`
	Phase3StartDate *time.Time `gorm:"column:phase3_start_date" json:"phase3_start_date,omitempty"`
	Phase3EndDate   *time.Time `gorm:"column:phase3_end_date" json:"phase3_end_date,omitempty"`
	CreateAt        *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"update_at"`
}

func (AcademicYear) TableName() string {
	return "academic_years"
}

// PhaseWindow returns the configured start/end for phase 2 or 3.
func (y *AcademicYear) PhaseWindow(phase int) (*time.Time, *time.Time) {
	switch phase {
	case 2:
		return y.Phase2StartDate, y.Phase2EndDate
	case 3:
		return y.Phase3StartDate, y.Phase3EndDate
	}
	return nil, nil
}
