package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Type is a closed enum. Persisted rows must stay within this exact value
// set, so additions here are a storage migration concern.
type Type string

const (
	TypeTask                         Type = "task"
	TypeEvent                        Type = "event"
	TypeEvaluation                   Type = "evaluation"
	TypeFeedback                     Type = "feedback"
	TypeSystem                       Type = "system"
	TypeWeeklyReport                 Type = "weekly_report"
	TypeReminder                     Type = "reminder"
	TypeDocument                     Type = "document"
	TypeTraining                     Type = "training"
	TypeCoachingSession              Type = "coaching_session"
	TypeTeamProgress                 Type = "team_progress"
	TypeTeamFollowup                 Type = "team_followup"
	TypeProbationDeadline            Type = "probation_deadline"
	TypeSystemAlert                  Type = "system_alert"
	TypeNewEmployee                  Type = "new_employee"
	TypeComplianceAlert              Type = "compliance_alert"
	TypeFeedbackAvailable            Type = "feedback_available"
	TypeFeedbackSubmission           Type = "feedback_submission"
	TypeEvaluationReminder           Type = "evaluation_reminder"
	TypeEvaluationOverdue            Type = "evaluation_overdue"
	TypeSupervisorAssessmentRequired Type = "supervisor_assessment_required"
	TypeAssessmentPending            Type = "assessment_pending"
	TypeSupervisorAssessmentPending  Type = "supervisor_assessment_pending"
)

var allTypes = map[Type]struct{}{
	TypeTask: {}, TypeEvent: {}, TypeEvaluation: {}, TypeFeedback: {},
	TypeSystem: {}, TypeWeeklyReport: {}, TypeReminder: {}, TypeDocument: {},
	TypeTraining: {}, TypeCoachingSession: {}, TypeTeamProgress: {},
	TypeTeamFollowup: {}, TypeProbationDeadline: {}, TypeSystemAlert: {},
	TypeNewEmployee: {}, TypeComplianceAlert: {}, TypeFeedbackAvailable: {},
	TypeFeedbackSubmission: {}, TypeEvaluationReminder: {},
	TypeEvaluationOverdue: {}, TypeSupervisorAssessmentRequired: {},
	TypeAssessmentPending: {}, TypeSupervisorAssessmentPending: {},
}

func (t Type) Valid() bool {
	_, ok := allTypes[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// Notification rows are append-mostly: the scheduler and services insert,
// and only the owning user ever flips is_read.
type Notification struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Type      Type           `gorm:"type:varchar(40);not null"`
	Title     string         `gorm:"type:varchar(200);not null"`
	Message   string         `gorm:"type:text;not null"`
	IsRead    bool           `gorm:"not null;default:false;index:idx_notifications_user_read"`
	Metadata  []byte         `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
