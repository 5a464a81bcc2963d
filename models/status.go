package models

// Application status values stored in applications.application_status.
const (
	StatusAwaitingPhase2Docs     = "AWAITING_PHASE2_DOCS"
	StatusPendingApproval        = "PENDING_APPROVAL"
	StatusIncorrectDocs          = "INCORRECT_DOCS"
	StatusEligibleForExam        = "ELIGIBLE_FOR_EXAM"
	StatusAwaitingPhase3Decision = "AWAITING_PHASE3_DECISION"
	StatusWaitingList            = "WAITING_LIST"
	StatusConfirmed              = "CONFIRMED"
	StatusWithdrawn              = "WITHDRAWN"
	StatusEnrolled               = "ENROLLED"
	StatusNoAction               = "NO_ACTION"
)

// Document review status values stored in documents.status.
const (
	DocStatusPending  = "PENDING"
	DocStatusApproved = "APPROVED"
	DocStatusRejected = "REJECTED"
)

// Document type tags. The prefix identifies the submission phase.
const (
	DocTypePhase2Confirmation = "PHASE2_CONFIRMATION"
	DocTypePhase2PaymentSlip  = "PHASE2_PAYMENT_SLIP"
	DocTypePhase3Consent      = "PHASE3_CONSENT"
	DocTypePhase3Contract     = "PHASE3_CONTRACT"
	DocTypePhase3Enrollment   = "PHASE3_ENROLLMENT"
)

// Phase2DocumentTypes is the required document set for phase 2.
var Phase2DocumentTypes = []string{
	DocTypePhase2Confirmation,
	DocTypePhase2PaymentSlip,
}

// Phase3DocumentTypes is the required document set for the phase-3 confirm path.
var Phase3DocumentTypes = []string{
	DocTypePhase3Consent,
	DocTypePhase3Contract,
	DocTypePhase3Enrollment,
}

// DocumentPhase returns 2 or 3 for a known document type, 0 otherwise.
func DocumentPhase(documentType string) int {
	switch documentType {
	case DocTypePhase2Confirmation, DocTypePhase2PaymentSlip:
		return 2
	case DocTypePhase3Consent, DocTypePhase3Contract, DocTypePhase3Enrollment:
		return 3
	}
	return 0
}

// IsValidDocumentType reports whether the tag is one of the known types.
func IsValidDocumentType(documentType string) bool {
	return DocumentPhase(documentType) != 0
}

// User roles.
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)
