package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Room      RoomRepository
	Student   StudentRepository
	FeeRecord FeeRecordRepository
	Complaint ComplaintRepository
	Activity  ActivityRepository
	User      UserRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Room:      NewRoomRepo(db),
		Student:   NewStudentRepo(db),
		FeeRecord: NewFeeRecordRepo(db),
		Complaint: NewComplaintRepo(db),
		Activity:  NewActivityRepo(db),
		User:      NewUserRepo(db),
	}
}

// validID 主键均为 uuid 列，非 uuid 的 id 按记录不存在处理（否则 PostgreSQL 报 22P02）
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
