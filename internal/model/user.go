package model

// Roles accepted in users.role.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User is an account row. Credential holds a bcrypt hash, never plaintext.
type User struct {
	ID         uint   `gorm:"column:id;primarykey" json:"id"`
	Username   string `gorm:"column:username;uniqueIndex;not null" json:"username"`
	Credential string `gorm:"column:credential;not null" json:"-"`
	Role       string `gorm:"column:role;not null" json:"role"`
}

func (User) TableName() string { return "users" }
