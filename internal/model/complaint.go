package model

import "time"

// Complaint 投诉表 — 对应 complaints
type Complaint struct {
	ComplaintID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"complaint_id"`
	Title         string     `gorm:"type:varchar(200);not null"                     json:"title"`
	Description   string     `gorm:"type:text;not null"                             json:"description"`
	StudentName   string     `gorm:"type:varchar(100);not null"                     json:"student_name"`
	RoomNumber    string     `gorm:"type:varchar(10);not null"                      json:"room_number"`
	Category      string     `gorm:"type:varchar(50);not null"                      json:"category"`
	Priority      string     `gorm:"type:varchar(50);not null"                      json:"priority"`
	Status        string     `gorm:"type:varchar(50);not null;default:'pending'"    json:"status"`
	DateSubmitted time.Time  `gorm:"type:date;not null;<-:create"                   json:"date_submitted"`
	DateResolved  *time.Time `gorm:"type:date"                                      json:"date_resolved,omitempty"`
	AssignedTo    string     `gorm:"type:varchar(100);not null;default:''"          json:"assigned_to"`
	BaseModel
}

// TableName 指定表名
func (Complaint) TableName() string { return "complaints" }
