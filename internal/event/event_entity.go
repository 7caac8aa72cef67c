package event

import (
	"time"

	"github.com/google/uuid"
)

// CompanyEvent is a scheduled company-wide occasion. The reminder sweeps key
// off StartDate only.
type CompanyEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Location    *string   `gorm:"type:varchar(255)"`
	StartDate   time.Time `gorm:"not null;index"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CompanyEvent) TableName() string {
	return "company_events"
}
