package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostel-admin/internal/model"
	pkgerrors "hostel-admin/pkg/errors"
)

// ComplaintRepository 投诉数据访问接口
type ComplaintRepository interface {
	Create(ctx context.Context, c *model.Complaint) error
	GetByID(ctx context.Context, id string) (*model.Complaint, error)
	List(ctx context.Context, status string) ([]model.Complaint, error)
	Update(ctx context.Context, c *model.Complaint) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByStatusSubmittedBefore(ctx context.Context, status string, before time.Time) (int64, error)
}

type complaintRepo struct {
	db *gorm.DB
}

// NewComplaintRepo 创建 ComplaintRepository 实例
func NewComplaintRepo(db *gorm.DB) ComplaintRepository {
	return &complaintRepo{db: db}
}

func (r *complaintRepo) Create(ctx context.Context, c *model.Complaint) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *complaintRepo) GetByID(ctx context.Context, id string) (*model.Complaint, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var c model.Complaint
	err := r.db.WithContext(ctx).
		Where("complaint_id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *complaintRepo) List(ctx context.Context, status string) ([]model.Complaint, error) {
	var complaints []model.Complaint
	db := r.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("date_submitted DESC, created_at DESC").Find(&complaints).Error
	return complaints, err
}

func (r *complaintRepo) Update(ctx context.Context, c *model.Complaint) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *complaintRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("complaint_id = ?", id).
		Delete(&model.Complaint{}).Error
}

func (r *complaintRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Complaint{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *complaintRepo) CountByStatusSubmittedBefore(ctx context.Context, status string, before time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Complaint{}).
		Where("status = ? AND date_submitted < ?", status, before).
		Count(&n).Error
	return n, err
}
