package services

import (
	"admission-api/config"
	"admission-api/models"
	"admission-api/utils"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Roster spreadsheet column headers (Thai, matching the template the
// registrar distributes to schools).
const (
	ColNationalID     = "เลขประจำตัวประชาชน"
	ColTitle          = "คำนำหน้าชื่อ"
	ColFirstName      = "ชื่อ"
	ColLastName       = "นามสกุล"
	ColDateOfBirth    = "วันเดือนปีเกิด"
	ColEmail          = "อีเมล"
	ColSchoolName     = "โรงเรียนปัจจุบัน"
	ColSchoolProvince = "จังหวัดโรงเรียนปัจจุบัน"
	ColGpaTotal       = "ผลการเรียนเฉลี่ยรวม"
	ColGpaMath        = "ผลการเรียนเฉลี่ยคณิตศาสตร์"
	ColGpaScience     = "ผลการเรียนเฉลี่ยวิทยาศาสตร์"
)

// RosterRow is one parsed applicant record from the roster spreadsheet.
type RosterRow struct {
	NationalID     string
	Title          string
	FirstName      string
	LastName       string
	DateOfBirth    *time.Time
	Email          string
	SchoolName     string
	SchoolProvince string
	GpaTotal       *float64
	GpaMath        *float64
	GpaScience     *float64
}

// ParseRosterRows converts raw sheet rows (header first) into roster
// records. Rows without a national ID are skipped, matching how schools
// pad their sheets with blank lines.
func ParseRosterRows(rows [][]string) ([]RosterRow, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("roster file has no data rows: %w", ErrValidation)
	}

	headers := utils.NormalizeHeaders(rows[0])
	required := []string{
		ColNationalID, ColTitle, ColFirstName, ColLastName, ColDateOfBirth,
		ColEmail, ColSchoolName, ColSchoolProvince,
		ColGpaTotal, ColGpaMath, ColGpaScience,
	}
	for _, col := range required {
		if _, ok := headers[col]; !ok {
			return nil, fmt.Errorf("missing column %q: %w", col, ErrValidation)
		}
	}

	records := make([]RosterRow, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		values := utils.ReadRow(headers, rows[i])
		nationalID := values[ColNationalID]
		if nationalID == "" {
			continue
		}
		if values[ColSchoolName] == "" {
			return nil, fmt.Errorf("row %d: school name is required: %w", i+1, ErrValidation)
		}

		records = append(records, RosterRow{
			NationalID:     nationalID,
			Title:          values[ColTitle],
			FirstName:      values[ColFirstName],
			LastName:       values[ColLastName],
			DateOfBirth:    utils.ParseRosterDate(values[ColDateOfBirth]),
			Email:          values[ColEmail],
			SchoolName:     values[ColSchoolName],
			SchoolProvince: values[ColSchoolProvince],
			GpaTotal:       parseGPA(values[ColGpaTotal]),
			GpaMath:        parseGPA(values[ColGpaMath]),
			GpaScience:     parseGPA(values[ColGpaScience]),
		})
	}
	return records, nil
}

func parseGPA(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// CreateAcademicYearInput carries the cycle setup form plus the parsed
// roster.
type CreateAcademicYearInput struct {
	Year            int
	Name            string
	IsActive        bool
	Phase2StartDate *time.Time
	Phase2EndDate   *time.Time
	Phase3StartDate *time.Time
	Phase3EndDate   *time.Time
	Rows            []RosterRow
}

// CreateAcademicYearWithRoster creates the cycle record and bulk-loads the
// applicant roster in one transaction. Schools are found-or-created by
// unique name; national IDs already known from a previous cycle are
// re-linked to the new cycle instead of duplicated. Activating the new
// cycle deactivates every other one in the same transaction.
func CreateAcademicYearWithRoster(db *gorm.DB, in CreateAcademicYearInput) (*models.AcademicYear, int, error) {
	if db == nil {
		db = config.DB
	}
	if in.Year <= 0 || in.Name == "" {
		return nil, 0, fmt.Errorf("year and name are required: %w", ErrValidation)
	}

	var year models.AcademicYear
	imported := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.AcademicYear
		if err := tx.Where("year = ?", in.Year).First(&existing).Error; err == nil {
			return fmt.Errorf("academic year %d already exists: %w", in.Year, ErrConflict)
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		if in.IsActive {
			if err := tx.Model(&models.AcademicYear{}).
				Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		year = models.AcademicYear{
			Year:            in.Year,
			Name:            in.Name,
			IsActive:        in.IsActive,
			Phase2StartDate: in.Phase2StartDate,
			Phase2EndDate:   in.Phase2EndDate,
			Phase3StartDate: in.Phase3StartDate,
			Phase3EndDate:   in.Phase3EndDate,
			CreateAt:        &now,
			UpdateAt:        &now,
		}
		if err := tx.Create(&year).Error; err != nil {
			return err
		}

		for _, row := range in.Rows {
			schoolID, err := findOrCreateSchool(tx, row.SchoolName, row.SchoolProvince)
			if err != nil {
				return err
			}

			var app models.Application
			err = tx.Where("national_id = ?", row.NationalID).First(&app).Error
			switch {
			case err == nil:
				if err := tx.Model(&models.Application{}).
					Where("application_id = ?", app.ApplicationID).
					Updates(map[string]interface{}{
						"academic_year_id": year.AcademicYearID,
						"update_at":        now,
					}).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				app = models.Application{
					NationalID:        row.NationalID,
					Title:             row.Title,
					FirstName:         row.FirstName,
					LastName:          row.LastName,
					DateOfBirth:       row.DateOfBirth,
					Email:             row.Email,
					GpaTotal:          row.GpaTotal,
					GpaMath:           row.GpaMath,
					GpaScience:        row.GpaScience,
					PDPAConsent:       true,
					ApplicationStatus: models.StatusAwaitingPhase2Docs,
					SchoolID:          schoolID,
					AcademicYearID:    year.AcademicYearID,
					CreateAt:          &now,
					UpdateAt:          &now,
				}
				if err := tx.Create(&app).Error; err != nil {
					return err
				}
				imported++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &year, imported, nil
}

func findOrCreateSchool(tx *gorm.DB, name, province string) (int, error) {
	var school models.School
	err := tx.Where("name = ?", name).First(&school).Error
	if err == nil {
		return school.SchoolID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	now := time.Now()
	school = models.School{Name: name, Province: province, CreateAt: &now, UpdateAt: &now}
	if err := tx.Create(&school).Error; err != nil {
		return 0, err
	}
	return school.SchoolID, nil
}

// ActivateAcademicYear makes the given cycle the single active one.
func ActivateAcademicYear(db *gorm.DB, academicYearID int) (*models.AcademicYear, error) {
	if db == nil {
		db = config.DB
	}

	var year models.AcademicYear
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&year, academicYearID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("academic year %d: %w", academicYearID, ErrNotFound)
			}
			return err
		}

		if err := tx.Model(&models.AcademicYear{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.AcademicYear{}).
			Where("academic_year_id = ?", academicYearID).
			Update("is_active", true).Error; err != nil {
			return err
		}
		year.IsActive = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &year, nil
}
