package model

// Submission references a file copied into managed storage, never the
// student's original path. Grade stays NULL until a teacher sets it.
type Submission struct {
	ID             uint    `gorm:"column:id;primarykey" json:"id"`
	AssignmentID   uint    `gorm:"column:assignment_id;not null;index" json:"assignment_id"`
	StudentID      uint    `gorm:"column:student_id;not null;index" json:"student_id"`
	SubmissionDate string  `gorm:"column:submission_date;not null" json:"submission_date"`
	FilePath       string  `gorm:"column:file_path;not null" json:"file_path"`
	Grade          *string `gorm:"column:grade" json:"grade,omitempty"`
}

func (Submission) TableName() string { return "submissions" }
