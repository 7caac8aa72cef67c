package onboarding

import (
	"time"

	"github.com/google/uuid"
)

// Stage is the fixed, ordered onboarding phase. Journeys only ever move
// forward through the sequence; the only way back is an explicit reset.
type Stage string

const (
	StagePrepare   Stage = "prepare"
	StageOrient    Stage = "orient"
	StageLand      Stage = "land"
	StageIntegrate Stage = "integrate"
	StageExcel     Stage = "excel"
)

var stageOrder = []Stage{StagePrepare, StageOrient, StageLand, StageIntegrate, StageExcel}

// Stages returns the fixed stage sequence in order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Next returns the following stage, or false when s is terminal (or unknown).
func (s Stage) Next() (Stage, bool) {
	for i, st := range stageOrder {
		if st == s {
			if i+1 < len(stageOrder) {
				return stageOrder[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

func (s Stage) Valid() bool {
	for _, st := range stageOrder {
		if st == s {
			return true
		}
	}
	return false
}

func (s Stage) String() string {
	return string(s)
}

// stageDurationDays is the fixed planning window per stage.
const stageDurationDays = 90

// OnboardingProgress is the per-user journey aggregate: current stage plus
// the derived overall completion percentage.
type OnboardingProgress struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID                  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_onboarding_progress_user"`
	Stage                   Stage     `gorm:"type:varchar(20);not null;default:'prepare'"`
	Progress                int       `gorm:"type:int;not null;default:0"`
	StageStartDate          time.Time `gorm:"not null"`
	EstimatedCompletionDate time.Time `gorm:"not null"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// OnboardingTask is reference data seeded at deploy time: the catalogue of
// work shown for each stage. Never mutated at runtime.
type OnboardingTask struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Stage     Stage     `gorm:"type:varchar(20);not null;uniqueIndex:uq_onboarding_tasks_stage_order,priority:1"`
	TaskOrder int       `gorm:"type:int;not null;uniqueIndex:uq_onboarding_tasks_stage_order,priority:2"`
	Title     string    `gorm:"type:varchar(200);not null"`
	IsDefault bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// UserTaskProgress tracks one user's state against one catalogue task.
// Created lazily on first interaction. The (UserID, TaskID) unique index is
// the correctness backstop against concurrent find-or-create races.
type UserTaskProgress struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_task_progress,priority:1"`
	TaskID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_task_progress,priority:2"`
	IsCompleted     bool       `gorm:"not null;default:false"`
	CompletedAt     *time.Time `gorm:""`
	HRValidated     bool       `gorm:"column:hr_validated;not null;default:false"`
	HRValidatedAt   *time.Time `gorm:"column:hr_validated_at"`
	HRComments      *string    `gorm:"column:hr_comments;type:text"`
	Notes           *string    `gorm:"type:text"`
	SupervisorNotes *string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
