package repository

import (
	"context"

	"gorm.io/gorm"

	"hostel-admin/internal/model"
	pkgerrors "hostel-admin/pkg/errors"
)

// UserRepository 管理员账号数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Create(user).Error)
}

// GetByUsername 登录时使用；users 表缺失时返回 ErrTableMissing
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, pkgerrors.Translate(err)
	}
	return &user, nil
}
