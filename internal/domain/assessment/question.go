package assessment

import "gorm.io/datatypes"

// Question rows are loaded out-of-band; tests are identified only by TestID.
type Question struct {
	ID            int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	TestID        *int64                      `gorm:"column:test_id;index" json:"test_id"`
	QuestionText  string                      `gorm:"column:question_text;type:text;not null" json:"question_text"`
	Options       datatypes.JSONSlice[string] `gorm:"column:options;not null" json:"options"`
	CorrectAnswer int                         `gorm:"column:correct_answer;not null" json:"correct_answer"`
	Explanation   string                      `gorm:"type:text" json:"explanation"`
	Subject       string                      `gorm:"size:100;index" json:"subject"`
}

func (Question) TableName() string { return "questions" }
