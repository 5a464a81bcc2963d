package services

import (
	"admission-api/config"
	"admission-api/models"
	"admission-api/utils"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultPrimaryQuota is the number of primary seats when the import
// request does not override it.
const DefaultPrimaryQuota = 30

// ParseResultRows extracts the ranked national IDs from the results
// spreadsheet. Row order is authoritative: the first data row is rank 1.
func ParseResultRows(rows [][]string) ([]string, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("results file has no data rows: %w", ErrValidation)
	}

	headers := utils.NormalizeHeaders(rows[0])
	if _, ok := headers[ColNationalID]; !ok {
		return nil, fmt.Errorf("missing column %q: %w", ColNationalID, ErrValidation)
	}

	ids := make([]string, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		values := utils.ReadRow(headers, rows[i])
		nationalID := values[ColNationalID]
		if nationalID == "" {
			return nil, fmt.Errorf("row %d: missing national ID: %w", i+1, ErrValidation)
		}
		ids = append(ids, nationalID)
	}
	return ids, nil
}

// ImportResults assigns phase-3 ranks for the active cycle. Ranks 1 to
// primaryQuota become AWAITING_PHASE3_DECISION, the rest WAITING_LIST.
// Stale ranks from any previous import are cleared first, and an
// unresolved national ID aborts the entire batch with no partial writes.
func ImportResults(db *gorm.DB, nationalIDs []string, primaryQuota int) (int, error) {
	if db == nil {
		db = config.DB
	}
	if len(nationalIDs) == 0 {
		return 0, fmt.Errorf("no rows to import: %w", ErrValidation)
	}
	if primaryQuota <= 0 {
		primaryQuota = DefaultPrimaryQuota
	}

	updated := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		year, err := ActiveAcademicYear(tx)
		if err != nil {
			return err
		}

		now := time.Now()
		// A previously ranked applicant absent from the new file falls back
		// into the exam-passed pool. Applicants who already decided keep
		// their status; only the pre-decision ranked statuses are reset.
		if err := tx.Model(&models.Application{}).
			Where("academic_year_id = ? AND priority_rank IS NOT NULL AND application_status IN ?",
				year.AcademicYearID,
				[]string{models.StatusAwaitingPhase3Decision, models.StatusWaitingList}).
			Updates(map[string]interface{}{
				"application_status": models.StatusEligibleForExam,
				"update_at":          now,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Application{}).
			Where("academic_year_id = ? AND priority_rank IS NOT NULL", year.AcademicYearID).
			Updates(map[string]interface{}{
				"priority_rank": nil,
				"update_at":     now,
			}).Error; err != nil {
			return err
		}

		for i, nationalID := range nationalIDs {
			rank := i + 1
			status := models.StatusAwaitingPhase3Decision
			if rank > primaryQuota {
				status = models.StatusWaitingList
			}

			res := tx.Model(&models.Application{}).
				Where("national_id = ? AND academic_year_id = ?", nationalID, year.AcademicYearID).
				Updates(map[string]interface{}{
					"priority_rank":      rank,
					"application_status": status,
					"update_at":          now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Row 1 is the header, so rank r sits on sheet row r+1.
				return fmt.Errorf("row %d: no application with national ID %s in the active cycle: %w",
					rank+1, nationalID, ErrNotFound)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
