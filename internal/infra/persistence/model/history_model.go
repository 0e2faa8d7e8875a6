package model

import (
	"time"

	"github.com/google/uuid"
)

// LivesHistoryModel is the GORM-specific struct for the 'lives_history'
// table. It is the durable audit trail behind the bounded in-memory history.
type LivesHistoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(20);not null"`
	Amount     int       `gorm:"not null"`
	Reason     string    `gorm:"type:varchar(255);not null"`
	QuizID     *int64    `gorm:"index"`
	CourseID   *int64    `gorm:"index"`
	OccurredAt time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LivesHistoryModel) TableName() string {
	return "lives_history"
}
