package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/model"
	"hostel-admin/internal/repository"
)

// RecentActivityLimit 动态列表最多返回的条数
const RecentActivityLimit = 10

var ErrActivityNotFound = errors.New("操作动态不存在")

// ActivityService 操作动态：写入由各业务 Service 在变更成功后触发，对外只读
type ActivityService interface {
	// Log 追加一条动态；写入失败只记录日志，不影响已完成的业务变更
	Log(ctx context.Context, activityType, description string)
	Recent(ctx context.Context) ([]dto.ActivityResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error)
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService 创建 ActivityService 实例
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

func (s *activityService) Log(ctx context.Context, activityType, description string) {
	a := &model.Activity{
		Timestamp:   time.Now().UTC(),
		Type:        activityType,
		Description: description,
	}
	if err := s.repo.Activity.Create(ctx, a); err != nil {
		s.logger.Error("写入操作动态失败",
			zap.String("type", activityType),
			zap.String("description", description),
			zap.Error(err),
		)
	}
}

func (s *activityService) Recent(ctx context.Context) ([]dto.ActivityResponse, error) {
	activities, err := s.repo.Activity.ListRecent(ctx, RecentActivityLimit)
	if err != nil {
		s.logger.Error("查询操作动态失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		result = append(result, toActivityResponse(&activities[i]))
	}
	return result, nil
}

func (s *activityService) GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	a, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("查询操作动态失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toActivityResponse(a)
	return &resp, nil
}

func toActivityResponse(a *model.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:          a.ActivityID,
		Timestamp:   a.Timestamp.UTC().Format(time.RFC3339),
		Type:        a.Type,
		Description: a.Description,
	}
}
