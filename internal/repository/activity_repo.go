package repository

import (
	"context"

	"gorm.io/gorm"

	"hostel-admin/internal/model"
)

// ActivityRepository 操作动态数据访问接口（只追加，无更新/删除）
type ActivityRepository interface {
	Create(ctx context.Context, a *model.Activity) error
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	ListRecent(ctx context.Context, limit int) ([]model.Activity, error)
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo 创建 ActivityRepository 实例
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, a *model.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *activityRepo) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var a model.Activity
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) ListRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
