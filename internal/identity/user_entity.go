package identity

import (
	"time"

	"github.com/google/uuid"
)

// User is provisioned by the account-management collaborator; this core
// only ever reads it.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName     string     `gorm:"type:varchar(120);not null"`
	Email        string     `gorm:"uniqueIndex"`
	Role         string     `gorm:"type:varchar(20);not null;index"`
	Department   string     `gorm:"type:varchar(80)"`
	SupervisorID *uuid.UUID `gorm:"type:uuid;index"`
	StartDate    time.Time  `gorm:"type:date;not null"`
	ProgramType  string     `gorm:"type:varchar(40)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
