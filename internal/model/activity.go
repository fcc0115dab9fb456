package model

import "time"

// 活动类型
const (
	ActivityRoomAdded         = "room_added"
	ActivityRoomUpdated       = "room_updated"
	ActivityStudentAdded      = "student_added"
	ActivityPaymentReceived   = "payment_received"
	ActivityComplaintFiled    = "complaint_filed"
	ActivityComplaintResolved = "complaint_resolved"
	ActivityBillsGenerated    = "bills_generated"
)

// Activity 操作动态表 — 对应 activities（只追加）
type Activity struct {
	ActivityID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_id"`
	Timestamp   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;<-:create"   json:"timestamp"`
	Type        string    `gorm:"type:varchar(100);not null"                     json:"type"`
	Description string    `gorm:"type:text;not null"                             json:"description"`
}

// TableName 指定表名
func (Activity) TableName() string { return "activities" }
