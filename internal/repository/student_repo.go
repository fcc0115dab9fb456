package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostel-admin/internal/model"
	pkgerrors "hostel-admin/pkg/errors"
)

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	List(ctx context.Context, status, roomNumber string) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
	// ListActiveWithRoom 状态为 active 且已分配房间的学生
	ListActiveWithRoom(ctx context.Context) ([]model.Student, error)
	// NamesByRoom 按房间号聚合入住学生姓名
	NamesByRoom(ctx context.Context, roomNumbers []string) (map[string][]string, error)
	Count(ctx context.Context) (int64, error)
	CountJoinedBefore(ctx context.Context, before time.Time) (int64, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Create(student).Error)
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, status, roomNumber string) ([]model.Student, error) {
	var students []model.Student
	db := r.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if roomNumber != "" {
		db = db.Where("room_number = ?", roomNumber)
	}
	err := db.Order("name ASC").Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Save(student).Error)
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.Student{}).Error
}

func (r *studentRepo) ListActiveWithRoom(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("status = ?", model.StudentStatusActive).
		Where("room_number IS NOT NULL AND room_number <> ''").
		Order("roll_number ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) NamesByRoom(ctx context.Context, roomNumbers []string) (map[string][]string, error) {
	result := make(map[string][]string, len(roomNumbers))
	if len(roomNumbers) == 0 {
		return result, nil
	}

	var rows []struct {
		RoomNumber string
		Name       string
	}
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Select("room_number, name").
		Where("room_number IN ?", roomNumbers).
		Order("name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.RoomNumber] = append(result[row.RoomNumber], row.Name)
	}
	return result, nil
}

func (r *studentRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&n).Error
	return n, err
}

func (r *studentRepo) CountJoinedBefore(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("join_date < ?", before).
		Count(&n).Error
	return n, err
}
