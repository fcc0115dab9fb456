package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/model"
	"hostel-admin/internal/repository"
)

var ErrComplaintNotFound = errors.New("投诉不存在")

// ComplaintService 投诉业务接口
type ComplaintService interface {
	Create(ctx context.Context, req *dto.CreateComplaintRequest, callerID string) (*dto.ComplaintResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ComplaintResponse, error)
	List(ctx context.Context, req *dto.ComplaintListRequest) ([]dto.ComplaintResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateComplaintRequest, callerID string) (*dto.ComplaintResponse, error)
	Delete(ctx context.Context, id string) error
}

type complaintService struct {
	repo     *repository.Repository
	activity ActivityService
	logger   *zap.Logger
}

// NewComplaintService 创建 ComplaintService 实例
func NewComplaintService(repo *repository.Repository, activity ActivityService, logger *zap.Logger) ComplaintService {
	return &complaintService{repo: repo, activity: activity, logger: logger}
}

// Create 提交投诉，提交日期取服务端当天且之后不可修改
func (s *complaintService) Create(ctx context.Context, req *dto.CreateComplaintRequest, callerID string) (*dto.ComplaintResponse, error) {
	dateResolved, err := dto.ParseDatePtr(req.DateResolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	status := req.Status
	if status == "" {
		status = model.ComplaintStatusPending
	}

	c := &model.Complaint{
		Title:         req.Title,
		Description:   req.Description,
		StudentName:   req.StudentName,
		RoomNumber:    req.RoomNumber,
		Category:      req.Category,
		Priority:      req.Priority,
		Status:        status,
		DateSubmitted: dto.TruncateDate(time.Now().UTC()),
		DateResolved:  dateResolved,
		AssignedTo:    req.AssignedTo,
	}
	c.CreatedBy = auditID(callerID)
	c.UpdatedBy = auditID(callerID)

	if err := s.repo.Complaint.Create(ctx, c); err != nil {
		s.logger.Error("创建投诉失败", zap.Error(err))
		return nil, err
	}

	s.activity.Log(ctx, model.ActivityComplaintFiled, fmt.Sprintf("New complaint filed: \"%s\"", c.Title))

	return toComplaintResponse(c), nil
}

func (s *complaintService) GetByID(ctx context.Context, id string) (*dto.ComplaintResponse, error) {
	c, err := s.getComplaint(ctx, id)
	if err != nil {
		return nil, err
	}
	return toComplaintResponse(c), nil
}

func (s *complaintService) List(ctx context.Context, req *dto.ComplaintListRequest) ([]dto.ComplaintResponse, error) {
	complaints, err := s.repo.Complaint.List(ctx, req.Status)
	if err != nil {
		s.logger.Error("列出投诉失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		result = append(result, *toComplaintResponse(&complaints[i]))
	}
	return result, nil
}

// Update 更新投诉；更新后状态为 resolved 时记录一条处理完成动态
func (s *complaintService) Update(ctx context.Context, id string, req *dto.UpdateComplaintRequest, callerID string) (*dto.ComplaintResponse, error) {
	c, err := s.getComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.StudentName != nil {
		c.StudentName = *req.StudentName
	}
	if req.RoomNumber != nil {
		c.RoomNumber = *req.RoomNumber
	}
	if req.Category != nil {
		c.Category = *req.Category
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.DateResolved != nil {
		dateResolved, err := dto.ParseDatePtr(req.DateResolved)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		c.DateResolved = dateResolved
	}
	if req.AssignedTo != nil {
		c.AssignedTo = *req.AssignedTo
	}

	c.UpdatedBy = auditID(callerID)

	if err := s.repo.Complaint.Update(ctx, c); err != nil {
		s.logger.Error("更新投诉失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if c.Status == model.ComplaintStatusResolved {
		s.activity.Log(ctx, model.ActivityComplaintResolved,
			fmt.Sprintf("Complaint \"%s\" has been resolved.", c.Title))
	}

	return toComplaintResponse(c), nil
}

func (s *complaintService) Delete(ctx context.Context, id string) error {
	if _, err := s.getComplaint(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Complaint.Delete(ctx, id); err != nil {
		s.logger.Error("删除投诉失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *complaintService) getComplaint(ctx context.Context, id string) (*model.Complaint, error) {
	c, err := s.repo.Complaint.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		s.logger.Error("查询投诉失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func toComplaintResponse(c *model.Complaint) *dto.ComplaintResponse {
	return &dto.ComplaintResponse{
		ID:            c.ComplaintID,
		Title:         c.Title,
		Description:   c.Description,
		StudentName:   c.StudentName,
		RoomNumber:    c.RoomNumber,
		Category:      c.Category,
		Priority:      c.Priority,
		Status:        c.Status,
		DateSubmitted: dto.FormatDate(c.DateSubmitted),
		DateResolved:  dto.FormatDatePtr(c.DateResolved),
		AssignedTo:    c.AssignedTo,
	}
}
