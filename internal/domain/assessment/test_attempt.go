package assessment

import (
	"time"

	"github.com/google/uuid"
)

// TestAttempt is one recorded submission. Duplicate submissions for the same
// user and test are distinct rows.
type TestAttempt struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	TestID    int64     `gorm:"column:test_id;not null;index" json:"test_id"`
	Score     int       `gorm:"not null" json:"score"`
	Accuracy  float64   `gorm:"not null" json:"accuracy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TestAttempt) TableName() string { return "test_attempts" }
