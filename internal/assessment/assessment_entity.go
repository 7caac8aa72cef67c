package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Status is the canonical pipeline state. It is always rederived from the
// populated fields before a write is accepted (see deriveStatus), so a stale
// stored value can never let a caller skip a step.
type Status string

const (
	StatusPendingCertificate  Status = "pending_certificate"
	StatusCertificateUploaded Status = "certificate_uploaded"
	StatusAssessmentPending   Status = "assessment_pending"
	StatusAssessmentCompleted Status = "assessment_completed"
	StatusDecisionPending     Status = "decision_pending"
	StatusDecisionMade        Status = "decision_made"
	StatusHRApprovalPending   Status = "hr_approval_pending"
	StatusHRApproved          Status = "hr_approved"
	StatusHRRejected          Status = "hr_rejected"
	StatusCompleted           Status = "completed"
)

const (
	DecisionProceedToPhase2 = "proceed_to_phase_2"
	DecisionTerminate       = "terminate"
	DecisionPutOnHold       = "put_on_hold"
)

const (
	HRDecisionApprove        = "approve"
	HRDecisionReject         = "reject"
	HRDecisionRequestChanges = "request_changes"
)

// SupervisorAssessment is the secondary-track approval record: certificate
// upload, supervisor assessment, supervisor decision and HR decision, in
// that order. One per onboarding journey entering the track.
type SupervisorAssessment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_supervisor_assessments_user"`
	SupervisorID uuid.UUID `gorm:"type:uuid;not null;index"`

	CertificateFile       *string    `gorm:"type:varchar(500)"`
	CertificateUploadDate *time.Time `gorm:""`

	AssessmentDate  *time.Time `gorm:""`
	AssessmentNotes *string    `gorm:"type:text"`
	AssessmentScore *int       `gorm:"type:int"`

	SupervisorDecision *string    `gorm:"type:varchar(30)"`
	SupervisorComments *string    `gorm:"type:text"`
	DecisionDate       *time.Time `gorm:""`

	// Legacy HR validation flag kept for persisted-state compatibility; the
	// binding HR step is the hr_decision below.
	HRValidated         bool       `gorm:"column:hr_validated;not null;default:false"`
	HRValidatedBy       *uuid.UUID `gorm:"column:hr_validated_by;type:uuid"`
	HRValidatedAt       *time.Time `gorm:"column:hr_validated_at"`
	HRValidationComment *string    `gorm:"column:hr_validation_comment;type:text"`

	HRDecision         *string    `gorm:"column:hr_decision;type:varchar(30)"`
	HRDecisionComments *string    `gorm:"column:hr_decision_comments;type:text"`
	HRDecisionDate     *time.Time `gorm:"column:hr_decision_date"`

	Status    Status `gorm:"type:varchar(30);not null;default:'pending_certificate'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// deriveStatus recomputes the canonical state from the populated fields.
// Transient announcement states (certificate_uploaded, assessment_completed,
// decision_made, hr_approved) collapse to the stable state that follows them;
// the constants stay declared because the persisted enum must keep accepting
// historical values.
func deriveStatus(a *SupervisorAssessment) Status {
	if a.HRDecision != nil {
		switch *a.HRDecision {
		case HRDecisionApprove:
			return StatusCompleted
		case HRDecisionReject:
			return StatusHRRejected
		}
		// request_changes clears the supervisor decision and itself before
		// saving, so it never rests here.
	}

	if a.SupervisorDecision != nil {
		if *a.SupervisorDecision == DecisionProceedToPhase2 {
			return StatusHRApprovalPending
		}
		// terminate / put_on_hold short-circuit to the terminal sink without
		// HR involvement; the decision field stays as the record of which
		// path was taken.
		return StatusCompleted
	}

	if a.AssessmentDate != nil {
		return StatusDecisionPending
	}

	if a.CertificateFile != nil {
		return StatusAssessmentPending
	}

	return StatusPendingCertificate
}

// Terminal reports whether no further writes are accepted.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusHRRejected
}
