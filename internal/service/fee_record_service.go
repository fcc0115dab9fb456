package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/model"
	"hostel-admin/internal/repository"
	pkgerrors "hostel-admin/pkg/errors"
)

// ── 费用记录模块业务错误 ──

var (
	ErrFeeRecordNotFound  = errors.New("费用记录不存在")
	ErrFeeRecordDuplicate = errors.New("该学生当月费用记录已存在")
)

// FeeRecordService 费用记录业务接口
type FeeRecordService interface {
	Create(ctx context.Context, req *dto.CreateFeeRecordRequest, callerID string) (*dto.FeeRecordResponse, error)
	GetByID(ctx context.Context, id string) (*dto.FeeRecordResponse, error)
	List(ctx context.Context, req *dto.FeeRecordListRequest) ([]dto.FeeRecordResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateFeeRecordRequest, callerID string) (*dto.FeeRecordResponse, error)
	Delete(ctx context.Context, id string) error
}

type feeRecordService struct {
	repo     *repository.Repository
	activity ActivityService
	logger   *zap.Logger
}

// NewFeeRecordService 创建 FeeRecordService 实例
func NewFeeRecordService(repo *repository.Repository, activity ActivityService, logger *zap.Logger) FeeRecordService {
	return &feeRecordService{repo: repo, activity: activity, logger: logger}
}

func (s *feeRecordService) Create(ctx context.Context, req *dto.CreateFeeRecordRequest, callerID string) (*dto.FeeRecordResponse, error) {
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	paidDate, err := dto.ParseDatePtr(req.PaidDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rec := &model.FeeRecord{
		StudentName:   req.StudentName,
		RollNumber:    req.RollNumber,
		RoomNumber:    req.RoomNumber,
		Month:         req.Month,
		Amount:        *req.Amount,
		DueDate:       dueDate,
		PaidDate:      paidDate,
		Status:        req.Status,
		PaymentMethod: nonEmpty(req.PaymentMethod),
		TransactionID: nonEmpty(req.TransactionID),
		LateFee:       req.LateFee,
		Notes:         nonEmpty(req.Notes),
	}
	rec.CreatedBy = auditID(callerID)
	rec.UpdatedBy = auditID(callerID)

	if err := s.repo.FeeRecord.Create(ctx, rec); err != nil {
		return nil, s.translateWriteError(err, "创建费用记录失败", zap.String("roll_number", req.RollNumber))
	}

	return toFeeRecordResponse(rec), nil
}

func (s *feeRecordService) GetByID(ctx context.Context, id string) (*dto.FeeRecordResponse, error) {
	rec, err := s.getFeeRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFeeRecordResponse(rec), nil
}

func (s *feeRecordService) List(ctx context.Context, req *dto.FeeRecordListRequest) ([]dto.FeeRecordResponse, error) {
	records, err := s.repo.FeeRecord.List(ctx, req.Status, req.Month)
	if err != nil {
		s.logger.Error("列出费用记录失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FeeRecordResponse, 0, len(records))
	for i := range records {
		result = append(result, *toFeeRecordResponse(&records[i]))
	}
	return result, nil
}

// Update 更新费用记录；更新后状态为 paid 时记录一条收款动态
func (s *feeRecordService) Update(ctx context.Context, id string, req *dto.UpdateFeeRecordRequest, callerID string) (*dto.FeeRecordResponse, error) {
	rec, err := s.getFeeRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StudentName != nil {
		rec.StudentName = *req.StudentName
	}
	if req.RollNumber != nil {
		rec.RollNumber = *req.RollNumber
	}
	if req.RoomNumber != nil {
		rec.RoomNumber = *req.RoomNumber
	}
	if req.Month != nil {
		rec.Month = *req.Month
	}
	if req.Amount != nil {
		rec.Amount = *req.Amount
	}
	if req.DueDate != nil {
		dueDate, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rec.DueDate = dueDate
	}
	if req.PaidDate != nil {
		paidDate, err := dto.ParseDatePtr(req.PaidDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rec.PaidDate = paidDate
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}
	if req.PaymentMethod != nil {
		rec.PaymentMethod = nonEmpty(req.PaymentMethod)
	}
	if req.TransactionID != nil {
		rec.TransactionID = nonEmpty(req.TransactionID)
	}
	if req.LateFee != nil {
		rec.LateFee = *req.LateFee
	}
	if req.Notes != nil {
		rec.Notes = nonEmpty(req.Notes)
	}

	rec.UpdatedBy = auditID(callerID)

	if err := s.repo.FeeRecord.Update(ctx, rec); err != nil {
		return nil, s.translateWriteError(err, "更新费用记录失败", zap.String("id", id))
	}

	if rec.Status == model.FeeStatusPaid {
		s.activity.Log(ctx, model.ActivityPaymentReceived,
			fmt.Sprintf("Fee payment of ₹%.2f received from %s.", rec.Amount, rec.StudentName))
	}

	return toFeeRecordResponse(rec), nil
}

func (s *feeRecordService) Delete(ctx context.Context, id string) error {
	if _, err := s.getFeeRecord(ctx, id); err != nil {
		return err
	}

	if err := s.repo.FeeRecord.Delete(ctx, id); err != nil {
		s.logger.Error("删除费用记录失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *feeRecordService) getFeeRecord(ctx context.Context, id string) (*model.FeeRecord, error) {
	rec, err := s.repo.FeeRecord.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeRecordNotFound
		}
		s.logger.Error("查询费用记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (s *feeRecordService) translateWriteError(err error, msg string, fields ...zap.Field) error {
	if errors.Is(err, pkgerrors.ErrDuplicate) {
		return ErrFeeRecordDuplicate
	}
	s.logger.Error(msg, append(fields, zap.Error(err))...)
	return err
}

// nonEmpty 空串按 NULL 存储
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func toFeeRecordResponse(rec *model.FeeRecord) *dto.FeeRecordResponse {
	return &dto.FeeRecordResponse{
		ID:            rec.FeeRecordID,
		StudentName:   rec.StudentName,
		RollNumber:    rec.RollNumber,
		RoomNumber:    rec.RoomNumber,
		Month:         rec.Month,
		Amount:        rec.Amount,
		DueDate:       dto.FormatDate(rec.DueDate),
		PaidDate:      dto.FormatDatePtr(rec.PaidDate),
		Status:        rec.Status,
		PaymentMethod: rec.PaymentMethod,
		TransactionID: rec.TransactionID,
		LateFee:       rec.LateFee,
		Notes:         rec.Notes,
	}
}
