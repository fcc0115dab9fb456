package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/model"
	"hostel-admin/internal/repository"
	pkgerrors "hostel-admin/pkg/errors"
)

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("学生不存在")
	ErrRollNumberTaken = errors.New("学号已存在")
	ErrEmailTaken      = errors.New("邮箱已被使用")
)

// StudentService 学生业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest, callerID string) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest, callerID string) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo     *repository.Repository
	activity ActivityService
	logger   *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, activity ActivityService, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, activity: activity, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest, callerID string) (*dto.StudentResponse, error) {
	joinDate, err := dto.ParseDate(req.JoinDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	student := &model.Student{
		Name:       req.Name,
		RollNumber: req.RollNumber,
		Email:      req.Email,
		Phone:      req.Phone,
		RoomNumber: normalizeRoomNumber(req.RoomNumber),
		Course:     req.Course,
		Year:       req.Year,
		Status:     req.Status,
		JoinDate:   joinDate,
		FeeStatus:  req.FeeStatus,
	}
	student.CreatedBy = auditID(callerID)
	student.UpdatedBy = auditID(callerID)

	if err := s.repo.Student.Create(ctx, student); err != nil {
		return nil, s.translateWriteError(err, "创建学生失败", zap.String("roll_number", req.RollNumber))
	}

	s.activity.Log(ctx, model.ActivityStudentAdded,
		fmt.Sprintf("New student %s (%s) was registered.", student.Name, student.RollNumber))

	return toStudentResponse(student), nil
}

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.getStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx, req.Status, req.RoomNumber)
	if err != nil {
		s.logger.Error("列出学生失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}
	return result, nil
}

// Update 更新学生信息；已有费用记录与投诉中的姓名/房间号快照不随之变化
func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest, callerID string) (*dto.StudentResponse, error) {
	student, err := s.getStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.RollNumber != nil {
		student.RollNumber = *req.RollNumber
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.RoomNumber != nil {
		student.RoomNumber = normalizeRoomNumber(req.RoomNumber)
	}
	if req.Course != nil {
		student.Course = *req.Course
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.Status != nil {
		student.Status = *req.Status
	}
	if req.JoinDate != nil {
		joinDate, err := dto.ParseDate(*req.JoinDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		student.JoinDate = joinDate
	}
	if req.FeeStatus != nil {
		student.FeeStatus = *req.FeeStatus
	}

	student.UpdatedBy = auditID(callerID)

	if err := s.repo.Student.Update(ctx, student); err != nil {
		return nil, s.translateWriteError(err, "更新学生失败", zap.String("id", id))
	}

	return toStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if _, err := s.getStudent(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("删除学生失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *studentService) getStudent(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return student, nil
}

// translateWriteError 按冲突约束区分学号与邮箱重复
func (s *studentService) translateWriteError(err error, msg string, fields ...zap.Field) error {
	if errors.Is(err, pkgerrors.ErrDuplicate) {
		if strings.Contains(pkgerrors.ConstraintOf(err), "email") {
			return ErrEmailTaken
		}
		return ErrRollNumberTaken
	}
	s.logger.Error(msg, append(fields, zap.Error(err))...)
	return err
}

// normalizeRoomNumber 空串视为未分配房间
func normalizeRoomNumber(roomNumber *string) *string {
	if roomNumber == nil || strings.TrimSpace(*roomNumber) == "" {
		return nil
	}
	v := strings.TrimSpace(*roomNumber)
	return &v
}

func toStudentResponse(st *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:         st.StudentID,
		Name:       st.Name,
		RollNumber: st.RollNumber,
		Email:      st.Email,
		Phone:      st.Phone,
		RoomNumber: st.RoomNumber,
		Course:     st.Course,
		Year:       st.Year,
		Status:     st.Status,
		JoinDate:   dto.FormatDate(st.JoinDate),
		FeeStatus:  st.FeeStatus,
	}
}
