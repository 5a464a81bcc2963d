package services

import (
	"admission-api/config"
	"admission-api/models"
	"admission-api/utils"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Seating spreadsheet column headers.
const (
	ColExamVenue  = "สนามสอบ"
	ColExamRoom   = "หมายเลขห้องสอบ"
	ColSeatNumber = "หมายเลขที่นั่ง"
)

// SeatingRow is one exam seat assignment keyed by national ID.
type SeatingRow struct {
	NationalID string
	ExamVenue  *string
	ExamRoom   *string
	SeatNumber *string
}

// ParseSeatingRows converts raw sheet rows (header first) into seat
// assignments. Every data row must carry a national ID.
func ParseSeatingRows(rows [][]string) ([]SeatingRow, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("seating file has no data rows: %w", ErrValidation)
	}

	headers := utils.NormalizeHeaders(rows[0])
	if _, ok := headers[ColNationalID]; !ok {
		return nil, fmt.Errorf("missing column %q: %w", ColNationalID, ErrValidation)
	}

	records := make([]SeatingRow, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		values := utils.ReadRow(headers, rows[i])
		nationalID := values[ColNationalID]
		if nationalID == "" {
			return nil, fmt.Errorf("row %d: missing national ID: %w", i+1, ErrValidation)
		}
		records = append(records, SeatingRow{
			NationalID: nationalID,
			ExamVenue:  utils.OptionalString(values[ColExamVenue]),
			ExamRoom:   utils.OptionalString(values[ColExamRoom]),
			SeatNumber: utils.OptionalString(values[ColSeatNumber]),
		})
	}
	return records, nil
}

// ImportSeating updates exam venue/room/seat for every row in a single
// transaction. Any national ID that matches no application aborts the
// whole batch so the operator can fix the file and retry.
func ImportSeating(db *gorm.DB, rows []SeatingRow) (int, error) {
	if db == nil {
		db = config.DB
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("no rows to import: %w", ErrValidation)
	}

	updated := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for i, row := range rows {
			res := tx.Model(&models.Application{}).
				Where("national_id = ?", row.NationalID).
				Updates(map[string]interface{}{
					"exam_venue":  row.ExamVenue,
					"exam_room":   row.ExamRoom,
					"seat_number": row.SeatNumber,
					"update_at":   now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Row 1 is the header, so data row i is sheet row i+2.
				return fmt.Errorf("row %d: no application with national ID %s: %w",
					i+2, row.NationalID, ErrNotFound)
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
