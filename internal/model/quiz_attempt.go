package model

// QuizAttempt is a scored record of one quiz submission. Every submission
// inserts a new row; attempt history is append-only.
type QuizAttempt struct {
	ID          uint   `gorm:"column:id;primarykey" json:"id"`
	QuizID      uint   `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	StudentID   uint   `gorm:"column:student_id;not null;index" json:"student_id"`
	AttemptDate string `gorm:"column:attempt_date;not null" json:"attempt_date"`
	Score       int    `gorm:"column:score;not null" json:"score"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }
