package models

import "time"

// Document is at most one row per (application, document type). A fresh
// upload of the same type upserts the row, resets the status to PENDING
// and clears the rejection reason. Absence of a row is the derived
// "not submitted" state and is never persisted.
type Document struct {
	DocumentID      int        `gorm:"primaryKey;column:document_id" json:"document_id"`
	ApplicationID   int        `gorm:"column:application_id;uniqueIndex:idx_application_doc_type" json:"application_id"`
	DocumentType    string     `gorm:"column:document_type;uniqueIndex:idx_application_doc_type" json:"document_type"`
	OriginalName    string     `gorm:"column:original_name" json:"original_name"`
	StoredPath      string     `gorm:"column:stored_path" json:"stored_path"`
	Status          string     `gorm:"column:status" json:"status"`
	RejectionReason *string    `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	UploadedAt      *time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
	CreateAt        *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Application *Application `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}
