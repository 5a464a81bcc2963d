package services

import (
	"admission-api/config"
	"admission-api/models"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertDocumentInput describes one accepted upload. The file must already
// be on disk; a failed transaction is the caller's cue to remove it.
type UpsertDocumentInput struct {
	ApplicationID int
	DocumentType  string
	OriginalName  string
	StoredPath    string
	UploadedBy    int
}

// UpsertDocument creates or replaces the single document row for the
// (application, type) pair. A re-upload resets the review status to
// PENDING and clears the rejection reason, and nudges the application out
// of AWAITING_PHASE2_DOCS / INCORRECT_DOCS so staff see it for re-review.
func UpsertDocument(db *gorm.DB, in UpsertDocumentInput) (*models.Document, error) {
	if db == nil {
		db = config.DB
	}
	if !models.IsValidDocumentType(in.DocumentType) {
		return nil, fmt.Errorf("unknown document type %q: %w", in.DocumentType, ErrValidation)
	}

	var doc models.Document
	err := db.Transaction(func(tx *gorm.DB) error {
		var app models.Application
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&app, in.ApplicationID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("application %d: %w", in.ApplicationID, ErrNotFound)
			}
			return err
		}

		now := time.Now()
		var existing models.Document
		err := tx.Where("application_id = ? AND document_type = ?", in.ApplicationID, in.DocumentType).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.Status != models.DocStatusRejected {
				return fmt.Errorf("document %s already submitted and awaiting review: %w",
					in.DocumentType, ErrStateConflict)
			}
			if err := tx.Model(&models.Document{}).
				Where("document_id = ?", existing.DocumentID).
				Updates(map[string]interface{}{
					"original_name":    in.OriginalName,
					"stored_path":      in.StoredPath,
					"status":           models.DocStatusPending,
					"rejection_reason": nil,
					"uploaded_at":      now,
					"update_at":        now,
				}).Error; err != nil {
				return err
			}
			existing.OriginalName = in.OriginalName
			existing.StoredPath = in.StoredPath
			existing.Status = models.DocStatusPending
			existing.RejectionReason = nil
			existing.UploadedAt = &now
			doc = existing
		case err == gorm.ErrRecordNotFound:
			doc = models.Document{
				ApplicationID: in.ApplicationID,
				DocumentType:  in.DocumentType,
				OriginalName:  in.OriginalName,
				StoredPath:    in.StoredPath,
				Status:        models.DocStatusPending,
				UploadedAt:    &now,
				CreateAt:      &now,
				UpdateAt:      &now,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return nudgeAfterUpload(tx, &app, in.DocumentType, in.UploadedBy)
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// nudgeAfterUpload moves the application back into the review queue after
// a fresh upload. Phase-2 uploads lift AWAITING_PHASE2_DOCS and
// INCORRECT_DOCS to PENDING_APPROVAL; a phase-3 re-upload after a
// rejection returns the application to CONFIRMED.
func nudgeAfterUpload(tx *gorm.DB, app *models.Application, documentType string, uploadedBy int) error {
	var target string
	switch models.DocumentPhase(documentType) {
	case 2:
		if app.PriorityRank != nil {
			return nil
		}
		if app.ApplicationStatus == models.StatusAwaitingPhase2Docs ||
			app.ApplicationStatus == models.StatusIncorrectDocs {
			target = models.StatusPendingApproval
		}
	case 3:
		if app.PriorityRank != nil && app.ApplicationStatus == models.StatusIncorrectDocs {
			target = models.StatusConfirmed
		}
	}

	if target == "" || target == app.ApplicationStatus {
		return nil
	}
	return writeStatusChange(tx, app, target, &uploadedBy, nil)
}
