package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"hostel-admin/config"
	"hostel-admin/internal/repository"
	"hostel-admin/pkg/jwt"
	"hostel-admin/pkg/redis"
)

// ErrInvalidInput 请求字段格式正确但语义无效（如日期无法解析）
var ErrInvalidInput = errors.New("请求参数无效")

// TokenBlacklist Token 黑名单存储（Redis 实现）
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// Service 所有 Service 的聚合入口
type Service struct {
	Auth      AuthService
	Room      RoomService
	Student   StudentService
	FeeRecord FeeRecordService
	Complaint ComplaintService
	Activity  ActivityService
	Billing   BillingService
	Dashboard DashboardService
	Export    ExportService
}

// NewService 创建 Service 聚合
// rdb 可为 nil（Redis 不可用时登出仅作客户端丢弃 Token）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var blacklist TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	activity := NewActivityService(repo, logger)

	return &Service{
		Auth:      NewAuthService(repo, jwtMgr, blacklist, logger),
		Room:      NewRoomService(repo, activity, logger),
		Student:   NewStudentService(repo, activity, logger),
		FeeRecord: NewFeeRecordService(repo, activity, logger),
		Complaint: NewComplaintService(repo, activity, logger),
		Activity:  activity,
		Billing:   NewBillingService(repo, activity, cfg.Billing.DueInDays, logger),
		Dashboard: NewDashboardService(repo, logger),
		Export:    NewExportService(repo, logger),
	}
}

// auditID 调用方 ID 为空（未启用认证）时不写审计字段
func auditID(callerID string) *string {
	if callerID == "" {
		return nil
	}
	return &callerID
}
