package model

import "time"

// Room 房间表 — 对应 rooms
// Occupied 由管理员手工维护，不与学生分配自动对账
type Room struct {
	RoomID          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`
	RoomNumber      string     `gorm:"type:varchar(10);not null;uniqueIndex"          json:"room_number"`
	Floor           int        `gorm:"not null"                                       json:"floor"`
	Capacity        int        `gorm:"not null"                                       json:"capacity"`
	Occupied        int        `gorm:"not null;default:0"                             json:"occupied"`
	Type            string     `gorm:"type:varchar(50);not null"                      json:"type"`
	Status          string     `gorm:"type:varchar(50);not null"                      json:"status"`
	Rent            float64    `gorm:"type:numeric(10,2);not null"                    json:"rent"`
	LastMaintenance *time.Time `gorm:"type:date"                                      json:"last_maintenance,omitempty"`
	Amenities       string     `gorm:"type:text;not null;default:''"                  json:"amenities"`
	BaseModel
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }
