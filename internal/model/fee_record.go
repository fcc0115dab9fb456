package model

import "time"

// FeeRecord 费用记录表 — 对应 fee_records
// 学生姓名、学号、房间号均为创建时的快照，学生信息变更不回写
type FeeRecord struct {
	FeeRecordID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"           json:"fee_record_id"`
	StudentName   string     `gorm:"type:varchar(100);not null"                               json:"student_name"`
	RollNumber    string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_fee_records_roll_month" json:"roll_number"`
	RoomNumber    string     `gorm:"type:varchar(10);not null"                                json:"room_number"`
	Month         string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_fee_records_roll_month" json:"month"`
	Amount        float64    `gorm:"type:numeric(10,2);not null"                              json:"amount"`
	DueDate       time.Time  `gorm:"type:date;not null"                                       json:"due_date"`
	PaidDate      *time.Time `gorm:"type:date;index"                                          json:"paid_date,omitempty"`
	Status        string     `gorm:"type:varchar(50);not null;index"                          json:"status"`
	PaymentMethod *string    `gorm:"type:varchar(50)"                                         json:"payment_method,omitempty"`
	TransactionID *string    `gorm:"type:varchar(100)"                                        json:"transaction_id,omitempty"`
	LateFee       float64    `gorm:"type:numeric(10,2);not null;default:0"                    json:"late_fee"`
	Notes         *string    `gorm:"type:text"                                                json:"notes,omitempty"`
	BaseModel
}

// TableName 指定表名
func (FeeRecord) TableName() string { return "fee_records" }
