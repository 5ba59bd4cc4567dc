package model

// UnassignedClass is the sentinel class_id for assignments not tied to a class.
const UnassignedClass = -1

type Assignment struct {
	ID          uint    `gorm:"column:id;primarykey" json:"id"`
	Title       string  `gorm:"column:title;not null" json:"title"`
	ClassID     int     `gorm:"column:class_id;not null;index" json:"class_id"`
	DueDate     string  `gorm:"column:due_date;not null" json:"due_date"`
	FilePath    *string `gorm:"column:file_path" json:"file_path,omitempty"`
	Description string  `gorm:"column:description" json:"description"`
}

func (Assignment) TableName() string { return "assignments" }
