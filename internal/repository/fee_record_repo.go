package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-admin/internal/model"
	pkgerrors "hostel-admin/pkg/errors"
)

// FeeRecordRepository 费用记录数据访问接口
type FeeRecordRepository interface {
	Create(ctx context.Context, rec *model.FeeRecord) error
	// CreateIfAbsent 按 (roll_number, month) 幂等插入，已存在时返回 false
	CreateIfAbsent(ctx context.Context, rec *model.FeeRecord) (bool, error)
	GetByID(ctx context.Context, id string) (*model.FeeRecord, error)
	List(ctx context.Context, status, month string) ([]model.FeeRecord, error)
	Update(ctx context.Context, rec *model.FeeRecord) error
	Delete(ctx context.Context, id string) error
	ExistsForMonth(ctx context.Context, rollNumber, month string) (bool, error)
	// SumPaidBetween 统计 paid_date 落在 [from, to) 内的金额，to 为 nil 表示不设上界
	SumPaidBetween(ctx context.Context, from time.Time, to *time.Time) (float64, error)
	CountByStatuses(ctx context.Context, statuses ...string) (int64, error)
}

type feeRecordRepo struct {
	db *gorm.DB
}

// NewFeeRecordRepo 创建 FeeRecordRepository 实例
func NewFeeRecordRepo(db *gorm.DB) FeeRecordRepository {
	return &feeRecordRepo{db: db}
}

func (r *feeRecordRepo) Create(ctx context.Context, rec *model.FeeRecord) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Create(rec).Error)
}

func (r *feeRecordRepo) CreateIfAbsent(ctx context.Context, rec *model.FeeRecord) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "roll_number"}, {Name: "month"}},
			DoNothing: true,
		}).
		Create(rec)
	if res.Error != nil {
		return false, pkgerrors.Translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *feeRecordRepo) GetByID(ctx context.Context, id string) (*model.FeeRecord, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var rec model.FeeRecord
	err := r.db.WithContext(ctx).
		Where("fee_record_id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *feeRecordRepo) List(ctx context.Context, status, month string) ([]model.FeeRecord, error) {
	var records []model.FeeRecord
	db := r.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if month != "" {
		db = db.Where("month = ?", month)
	}
	err := db.Order("due_date DESC, student_name ASC").Find(&records).Error
	return records, err
}

func (r *feeRecordRepo) Update(ctx context.Context, rec *model.FeeRecord) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Save(rec).Error)
}

func (r *feeRecordRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("fee_record_id = ?", id).
		Delete(&model.FeeRecord{}).Error
}

func (r *feeRecordRepo) ExistsForMonth(ctx context.Context, rollNumber, month string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.FeeRecord{}).
		Where("roll_number = ? AND month = ?", rollNumber, month).
		Count(&n).Error
	return n > 0, err
}

func (r *feeRecordRepo) SumPaidBetween(ctx context.Context, from time.Time, to *time.Time) (float64, error) {
	var total float64
	db := r.db.WithContext(ctx).
		Model(&model.FeeRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("paid_date >= ?", from)
	if to != nil {
		db = db.Where("paid_date < ?", *to)
	}
	err := db.Scan(&total).Error
	return total, err
}

func (r *feeRecordRepo) CountByStatuses(ctx context.Context, statuses ...string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.FeeRecord{}).
		Where("status IN ?", statuses).
		Count(&n).Error
	return n, err
}
