package model

// Enrollment is a (student, class) membership record. It is independent of
// attendance: joining a class session does not create one.
type Enrollment struct {
	StudentID uint `gorm:"column:student_id;primaryKey" json:"student_id"`
	ClassID   uint `gorm:"column:class_id;primaryKey" json:"class_id"`
}

func (Enrollment) TableName() string { return "enrollments" }
