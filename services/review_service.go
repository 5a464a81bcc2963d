package services

import (
	"admission-api/config"
	"admission-api/models"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewInput is one staff decision on one document.
type ReviewInput struct {
	DocumentID int
	Status     string
	Reason     *string
	ReviewerID int
}

// ReviewResult reports the reviewed document together with the
// application status the review resolved to.
type ReviewResult struct {
	Document          models.Document
	ApplicationStatus string
}

// ReviewDocument applies a staff review decision to exactly one document
// and recomputes the owning application's status in the same transaction.
// Staff review is deliberately not window-gated: applicants are time-boxed,
// reviewers clear their backlog whenever.
func ReviewDocument(db *gorm.DB, in ReviewInput) (*ReviewResult, error) {
	if db == nil {
		db = config.DB
	}

	if in.Status != models.DocStatusApproved && in.Status != models.DocStatusRejected {
		return nil, fmt.Errorf("review status must be APPROVED or REJECTED: %w", ErrValidation)
	}

	var reason *string
	if in.Status == models.DocStatusRejected {
		if in.Reason == nil || strings.TrimSpace(*in.Reason) == "" {
			return nil, fmt.Errorf("rejection reason is required: %w", ErrValidation)
		}
		trimmed := strings.TrimSpace(*in.Reason)
		reason = &trimmed
	}
	// Approval always clears any previous reason.

	var result ReviewResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var doc models.Document
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&doc, in.DocumentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("document %d: %w", in.DocumentID, ErrNotFound)
			}
			return err
		}

		now := time.Now()
		if err := tx.Model(&models.Document{}).
			Where("document_id = ?", doc.DocumentID).
			Updates(map[string]interface{}{
				"status":           in.Status,
				"rejection_reason": reason,
				"update_at":        now,
			}).Error; err != nil {
			return err
		}
		doc.Status = in.Status
		doc.RejectionReason = reason

		phase := models.DocumentPhase(doc.DocumentType)
		newStatus, err := RecomputeStatus(tx, doc.ApplicationID, phase, &in.ReviewerID)
		if err != nil {
			return err
		}

		result = ReviewResult{Document: doc, ApplicationStatus: newStatus}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyReviewOutcome(db, result.Document.ApplicationID, result.ApplicationStatus)
	return &result, nil
}

// notifyReviewOutcome emails the applicant when a review resolves the
// application, best effort after the transaction committed.
func notifyReviewOutcome(db *gorm.DB, applicationID int, status string) {
	var subject, body string
	switch status {
	case models.StatusIncorrectDocs:
		subject = "เอกสารของท่านไม่ผ่านการตรวจสอบ"
		body = "<p>เอกสารบางรายการไม่ผ่านการตรวจสอบ กรุณาเข้าสู่ระบบเพื่อตรวจสอบเหตุผลและส่งเอกสารใหม่อีกครั้ง</p>"
	case models.StatusEligibleForExam:
		subject = "เอกสารครบถ้วน - ท่านมีสิทธิ์เข้าสอบ"
		body = "<p>เอกสารของท่านผ่านการตรวจสอบครบถ้วนแล้ว ท่านมีสิทธิ์เข้าสอบคัดเลือก</p>"
	case models.StatusEnrolled:
		subject = "การมอบตัวเสร็จสมบูรณ์"
		body = "<p>เอกสารมอบตัวของท่านผ่านการตรวจสอบครบถ้วน การมอบตัวเสร็จสมบูรณ์</p>"
	default:
		return
	}

	go func() {
		var app models.Application
		if err := db.First(&app, applicationID).Error; err != nil {
			log.Printf("review notification: load application %d: %v", applicationID, err)
			return
		}
		if app.Email == "" {
			return
		}
		if err := config.SendMail([]string{app.Email}, subject, body); err != nil {
			log.Printf("review notification: send to %s: %v", app.Email, err)
		}
	}()
}
