package services

import (
	"admission-api/models"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The application status is always recomputed from the full current
// document set of the phase, never as an incremental delta. Recomputation
// is therefore idempotent and independent of the order in which staff
// review the individual documents.

// ComputePhase2Status derives the phase-2 application status from the
// current phase-2 documents.
func ComputePhase2Status(docs []models.Document) string {
	if len(docs) == 0 {
		return models.StatusAwaitingPhase2Docs
	}

	for _, doc := range docs {
		if doc.Status == models.DocStatusRejected {
			return models.StatusIncorrectDocs
		}
	}

	if allApproved(docs, models.Phase2DocumentTypes) {
		return models.StatusEligibleForExam
	}
	return models.StatusPendingApproval
}

// ComputePhase3Status derives the phase-3 application status for the
// confirm path. The withdraw path never reaches recomputation: WITHDRAWN
// is terminal the moment the decision is recorded.
func ComputePhase3Status(docs []models.Document) string {
	for _, doc := range docs {
		if doc.Status == models.DocStatusRejected {
			return models.StatusIncorrectDocs
		}
	}

	if allApproved(docs, models.Phase3DocumentTypes) {
		return models.StatusEnrolled
	}
	return models.StatusConfirmed
}

func allApproved(docs []models.Document, required []string) bool {
	byType := make(map[string]models.Document, len(docs))
	for _, doc := range docs {
		byType[doc.DocumentType] = doc
	}
	for _, t := range required {
		doc, ok := byType[t]
		if !ok || doc.Status != models.DocStatusApproved {
			return false
		}
	}
	return true
}

// phase2RecomputeStatuses are the only application statuses a phase-2
// recomputation may move between. Later-phase and terminal statuses are
// left alone so a late phase-2 re-review cannot drag an admitted
// applicant backwards.
var phase2RecomputeStatuses = map[string]bool{
	models.StatusAwaitingPhase2Docs: true,
	models.StatusPendingApproval:    true,
	models.StatusIncorrectDocs:      true,
	models.StatusEligibleForExam:    true,
}

// phase3RecomputeStatuses are the statuses of the phase-3 document-review
// sub-path. Pre-decision and terminal statuses are not recomputed.
var phase3RecomputeStatuses = map[string]bool{
	models.StatusConfirmed:     true,
	models.StatusIncorrectDocs: true,
	models.StatusEnrolled:      true,
}

// RecomputeStatus re-derives the application status from the stored
// document set of the given phase and persists it when it changed. Must
// run inside the caller's transaction; the application row is locked so
// concurrent reviews of sibling documents serialize on this step.
func RecomputeStatus(tx *gorm.DB, applicationID int, phase int, changedBy *int) (string, error) {
	var app models.Application
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&app, applicationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("application %d: %w", applicationID, ErrNotFound)
		}
		return "", err
	}

	var docTypes []string
	var eligible map[string]bool
	switch phase {
	case 2:
		docTypes = models.Phase2DocumentTypes
		eligible = phase2RecomputeStatuses
	case 3:
		docTypes = models.Phase3DocumentTypes
		eligible = phase3RecomputeStatuses
	default:
		return "", fmt.Errorf("unknown phase %d: %w", phase, ErrValidation)
	}

	if !eligible[app.ApplicationStatus] {
		return app.ApplicationStatus, nil
	}
	// A ranked applicant whose status reads INCORRECT_DOCS is in the
	// phase-3 sub-path; a phase-2 recompute must not touch them.
	if phase == 2 && app.PriorityRank != nil {
		return app.ApplicationStatus, nil
	}

	var docs []models.Document
	if err := tx.Where("application_id = ? AND document_type IN ?", applicationID, docTypes).
		Find(&docs).Error; err != nil {
		return "", err
	}

	var newStatus string
	if phase == 2 {
		newStatus = ComputePhase2Status(docs)
	} else {
		newStatus = ComputePhase3Status(docs)
	}

	if newStatus == app.ApplicationStatus {
		return newStatus, nil
	}

	if err := writeStatusChange(tx, &app, newStatus, changedBy, nil); err != nil {
		return "", err
	}
	return newStatus, nil
}

// writeStatusChange persists a status transition plus its history row in
// the caller's transaction.
func writeStatusChange(tx *gorm.DB, app *models.Application, newStatus string, changedBy *int, reason *string) error {
	now := time.Now()
	oldStatus := app.ApplicationStatus

	if err := tx.Model(&models.Application{}).
		Where("application_id = ?", app.ApplicationID).
		Updates(map[string]interface{}{
			"application_status": newStatus,
			"update_at":          now,
		}).Error; err != nil {
		return err
	}

	history := models.ApplicationStatusHistory{
		ApplicationID: app.ApplicationID,
		OldStatus:     &oldStatus,
		NewStatus:     newStatus,
		ChangedBy:     changedBy,
		Reason:        reason,
		CreatedAt:     now,
	}
	if err := tx.Create(&history).Error; err != nil {
		return err
	}

	app.ApplicationStatus = newStatus
	return nil
}
