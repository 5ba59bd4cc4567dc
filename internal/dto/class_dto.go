package dto

// ClassCreateDTO is the request body for creating a class. TeacherID is the
// caller's account id; there is no session state in the core.
type ClassCreateDTO struct {
	Title     string `json:"title" binding:"required"`
	MeetLink  string `json:"meet_link" binding:"required"`
	TeacherID uint   `json:"teacher_id" binding:"required"`
}

// ClassUpdateDTO identifies the class by its old title, the natural key the
// existing callers use.
type ClassUpdateDTO struct {
	OldTitle  string `json:"old_title" binding:"required"`
	NewTitle  string `json:"new_title" binding:"required"`
	MeetLink  string `json:"meet_link" binding:"required"`
	TeacherID uint   `json:"teacher_id" binding:"required"`
}

type ClassDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	MeetLink  string `json:"meet_link"`
	CreatedBy uint   `json:"created_by"`
}

// EnrollDTO is the request body for establishing class membership.
type EnrollDTO struct {
	StudentID uint `json:"student_id" binding:"required"`
}

// JoinClassDTO is the request body for joining a class session.
type JoinClassDTO struct {
	StudentID uint `json:"student_id" binding:"required"`
}

// JoinClassResultDTO reports the attendance outcome and the validated meeting
// link the UI should open.
type JoinClassResultDTO struct {
	MeetLink string `json:"meet_link"`
	Status   string `json:"status"`
}

type AttendanceDTO struct {
	ClassID uint   `json:"class_id"`
	UserID  uint   `json:"user_id"`
	Date    string `json:"date"`
}

// MarkAttendanceDTO is the request body for recording attendance directly.
// Date is optional; blank means today.
type MarkAttendanceDTO struct {
	UserID uint   `json:"user_id" binding:"required"`
	Date   string `json:"date"`
}
