package dto

// QuizCreateDTO is the request body for creating a quiz.
type QuizCreateDTO struct {
	Title    string  `json:"title" binding:"required"`
	ClassID  uint    `json:"class_id" binding:"required"`
	DueDate  string  `json:"due_date" binding:"required"`
	FilePath *string `json:"file_path"`
}

type QuizDTO struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	ClassID  uint    `json:"class_id"`
	DueDate  string  `json:"due_date"`
	FilePath *string `json:"file_path,omitempty"`
}

// QuestionCreateDTO is the request body for adding a question to the bank.
type QuestionCreateDTO struct {
	Question      string `json:"question" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectOption string `json:"correct_option" binding:"required"`
}

type QuestionDTO struct {
	ID            uint   `json:"id"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
}

// AttemptSubmitDTO carries a student's selected letters, one per question in
// bank order.
type AttemptSubmitDTO struct {
	StudentID uint     `json:"student_id" binding:"required"`
	Selected  []string `json:"selected" binding:"required,dive,required"`
}

type AttemptDTO struct {
	ID          uint   `json:"id"`
	QuizID      uint   `json:"quiz_id"`
	StudentID   uint   `json:"student_id"`
	AttemptDate string `json:"attempt_date"`
	Score       int    `json:"score"`
}
