package feedback

import (
	"time"

	"github.com/google/uuid"
)

// Type is the scheduled check-in window a form belongs to, counted from the
// employee's start date.
type Type string

const (
	TypeThreeMonth  Type = "3_month"
	TypeSixMonth    Type = "6_month"
	TypeTwelveMonth Type = "12_month"
)

func (t Type) Valid() bool {
	switch t {
	case TypeThreeMonth, TypeSixMonth, TypeTwelveMonth:
		return true
	}
	return false
}

// TypeForMonths maps a whole-month tenure to the check-in it triggers.
func TypeForMonths(months int) (Type, bool) {
	switch months {
	case 3:
		return TypeThreeMonth, true
	case 6:
		return TypeSixMonth, true
	case 12:
		return TypeTwelveMonth, true
	}
	return "", false
}

type Feedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_user_type,priority:1"`
	Type        Type      `gorm:"type:varchar(20);not null;uniqueIndex:uq_feedback_user_type,priority:2"`
	Content     string    `gorm:"type:text;not null"`
	SubmittedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Feedback) TableName() string {
	return "feedback"
}
