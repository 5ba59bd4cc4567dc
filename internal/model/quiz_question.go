package model

// QuizQuestion is a row of the global question bank. The table carries no
// foreign key to a quiz, so questions are shared across all quizzes; this
// matches the persisted schema contract and is kept as a known limitation.
type QuizQuestion struct {
	ID            uint   `gorm:"column:id;primarykey" json:"id"`
	Question      string `gorm:"column:question;not null" json:"question"`
	OptionA       string `gorm:"column:option_a;not null" json:"option_a"`
	OptionB       string `gorm:"column:option_b;not null" json:"option_b"`
	OptionC       string `gorm:"column:option_c;not null" json:"option_c"`
	OptionD       string `gorm:"column:option_d;not null" json:"option_d"`
	CorrectOption string `gorm:"column:correct_option;not null" json:"correct_option"`
}

func (QuizQuestion) TableName() string { return "quiz_questions" }
