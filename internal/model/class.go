package model

type Class struct {
	ID        uint   `gorm:"column:id;primarykey" json:"id"`
	Title     string `gorm:"column:title;not null" json:"title"`
	MeetLink  string `gorm:"column:meet_link;not null" json:"meet_link"`
	CreatedBy uint   `gorm:"column:created_by;not null;index" json:"created_by"`
}

func (Class) TableName() string { return "classes" }
