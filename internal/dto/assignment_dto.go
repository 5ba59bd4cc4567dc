package dto

// AssignmentCreateDTO is the request body for creating an assignment.
// ClassID may be -1 for an assignment not yet tied to a class.
type AssignmentCreateDTO struct {
	Title       string  `json:"title" binding:"required"`
	ClassID     *int    `json:"class_id"`
	DueDate     string  `json:"due_date" binding:"required"`
	Description string  `json:"description"`
	FilePath    *string `json:"file_path"`
}

type AssignmentDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	ClassID     int     `json:"class_id"`
	DueDate     string  `json:"due_date"`
	Description string  `json:"description"`
	FilePath    *string `json:"file_path,omitempty"`
}

type SubmissionDTO struct {
	ID             uint    `json:"id"`
	AssignmentID   uint    `json:"assignment_id"`
	StudentID      uint    `json:"student_id"`
	SubmissionDate string  `json:"submission_date"`
	FilePath       string  `json:"file_path"`
	Grade          *string `json:"grade,omitempty"`
}

// GradeDTO is the request body for grading a submission.
type GradeDTO struct {
	Grade string `json:"grade" binding:"required"`
}
