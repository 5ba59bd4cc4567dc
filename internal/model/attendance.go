package model

// Attendance records that a user joined a class on a calendar day. The
// composite primary key is the store-level uniqueness constraint that makes
// recording idempotent under concurrent joins.
type Attendance struct {
	ClassID uint   `gorm:"column:class_id;primaryKey" json:"class_id"`
	UserID  uint   `gorm:"column:user_id;primaryKey" json:"user_id"`
	Date    string `gorm:"column:date;primaryKey" json:"date"`
}

func (Attendance) TableName() string { return "attendance" }
