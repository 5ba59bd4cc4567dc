package repository

import (
	"github.com/hoangtm/classtrack/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	// Insert upserts the attendance row for its (class, user, date) key and
	// reports how many rows were actually written: 1 for a fresh record, 0
	// when the day was already marked. The conflict clause makes the write
	// race-free under concurrent joins.
	Insert(attendance *model.Attendance) (int64, error)
	FindByClassAndDate(classID uint, date string) ([]model.Attendance, error)
	FindByUser(userID uint) ([]model.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Insert(attendance *model.Attendance) (int64, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(attendance)
	return res.RowsAffected, res.Error
}

func (r *attendanceRepository) FindByClassAndDate(classID uint, date string) ([]model.Attendance, error) {
	var rows []model.Attendance
	err := r.db.Where("class_id = ? AND date = ?", classID, date).Find(&rows).Error
	return rows, err
}

func (r *attendanceRepository) FindByUser(userID uint) ([]model.Attendance, error) {
	var rows []model.Attendance
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&rows).Error
	return rows, err
}
