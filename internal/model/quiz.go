package model

type Quiz struct {
	ID       uint    `gorm:"column:id;primarykey" json:"id"`
	Title    string  `gorm:"column:title;not null" json:"title"`
	ClassID  uint    `gorm:"column:class_id;not null;index" json:"class_id"`
	DueDate  string  `gorm:"column:due_date;not null" json:"due_date"`
	FilePath *string `gorm:"column:file_path" json:"file_path,omitempty"`
}

func (Quiz) TableName() string { return "quizzes" }
