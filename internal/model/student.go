package model

import "time"

// Student 学生表 — 对应 students
// RoomNumber 按值匹配 rooms.room_number，非外键
type Student struct {
	StudentID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	Name       string    `gorm:"type:varchar(100);not null"                     json:"name"`
	RollNumber string    `gorm:"type:varchar(20);not null;uniqueIndex"          json:"roll_number"`
	Email      string    `gorm:"type:varchar(254);not null;uniqueIndex"         json:"email"`
	Phone      string    `gorm:"type:varchar(20);not null"                      json:"phone"`
	RoomNumber *string   `gorm:"type:varchar(10);index"                         json:"room_number,omitempty"`
	Course     string    `gorm:"type:varchar(100);not null"                     json:"course"`
	Year       string    `gorm:"type:varchar(50);not null"                      json:"year"`
	Status     string    `gorm:"type:varchar(50);not null;index"                json:"status"`
	JoinDate   time.Time `gorm:"type:date;not null"                             json:"join_date"`
	FeeStatus  string    `gorm:"type:varchar(50);not null"                      json:"fee_status"`
	BaseModel
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// HasRoom 是否已分配房间
func (s *Student) HasRoom() bool {
	return s.RoomNumber != nil && *s.RoomNumber != ""
}
