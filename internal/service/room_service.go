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

// ── 房间模块业务错误 ──

var (
	ErrRoomNotFound    = errors.New("房间不存在")
	ErrRoomNumberTaken = errors.New("房间号已存在")
)

// RoomService 房间业务接口
type RoomService interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest, callerID string) (*dto.RoomResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RoomResponse, error)
	List(ctx context.Context, req *dto.RoomListRequest) ([]dto.RoomResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateRoomRequest, callerID string) (*dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type roomService struct {
	repo     *repository.Repository
	activity ActivityService
	logger   *zap.Logger
}

// NewRoomService 创建 RoomService 实例
func NewRoomService(repo *repository.Repository, activity ActivityService, logger *zap.Logger) RoomService {
	return &roomService{repo: repo, activity: activity, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *roomService) Create(ctx context.Context, req *dto.CreateRoomRequest, callerID string) (*dto.RoomResponse, error) {
	lastMaintenance, err := dto.ParseDatePtr(req.LastMaintenance)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	room := &model.Room{
		RoomNumber:      req.RoomNumber,
		Floor:           *req.Floor,
		Capacity:        *req.Capacity,
		Occupied:        req.Occupied,
		Type:            req.Type,
		Status:          req.Status,
		Rent:            *req.Rent,
		LastMaintenance: lastMaintenance,
		Amenities:       req.Amenities,
	}
	room.CreatedBy = auditID(callerID)
	room.UpdatedBy = auditID(callerID)

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, s.translateWriteError(err, "创建房间失败", zap.String("room_number", req.RoomNumber))
	}

	s.activity.Log(ctx, model.ActivityRoomAdded, fmt.Sprintf("New room %s was added.", room.RoomNumber))

	return s.toRoomResponse(ctx, room)
}

// ────────────────────── GetByID ──────────────────────

func (s *roomService) GetByID(ctx context.Context, id string) (*dto.RoomResponse, error) {
	room, err := s.getRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toRoomResponse(ctx, room)
}

// ────────────────────── List ──────────────────────

func (s *roomService) List(ctx context.Context, req *dto.RoomListRequest) ([]dto.RoomResponse, error) {
	rooms, err := s.repo.Room.List(ctx, req.Status)
	if err != nil {
		s.logger.Error("列出房间失败", zap.Error(err))
		return nil, err
	}

	// 一次性查询所有房间的入住学生，避免逐间查询
	numbers := make([]string, 0, len(rooms))
	for i := range rooms {
		numbers = append(numbers, rooms[i].RoomNumber)
	}
	names, err := s.repo.Student.NamesByRoom(ctx, numbers)
	if err != nil {
		s.logger.Error("查询房间学生失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		result = append(result, buildRoomResponse(&rooms[i], names[rooms[i].RoomNumber]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *roomService) Update(ctx context.Context, id string, req *dto.UpdateRoomRequest, callerID string) (*dto.RoomResponse, error) {
	room, err := s.getRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Occupied != nil {
		room.Occupied = *req.Occupied
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.Rent != nil {
		room.Rent = *req.Rent
	}
	if req.LastMaintenance != nil {
		lastMaintenance, err := dto.ParseDatePtr(req.LastMaintenance)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		room.LastMaintenance = lastMaintenance
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}

	room.UpdatedBy = auditID(callerID)

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, s.translateWriteError(err, "更新房间失败", zap.String("id", id))
	}

	s.activity.Log(ctx, model.ActivityRoomUpdated, fmt.Sprintf("Room %s details were updated.", room.RoomNumber))

	return s.toRoomResponse(ctx, room)
}

// ────────────────────── Delete ──────────────────────

// Delete 删除房间；历史费用记录与投诉保留原房间号
func (s *roomService) Delete(ctx context.Context, id string) error {
	if _, err := s.getRoom(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.logger.Error("删除房间失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *roomService) getRoom(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *roomService) translateWriteError(err error, msg string, fields ...zap.Field) error {
	if errors.Is(err, pkgerrors.ErrDuplicate) {
		return ErrRoomNumberTaken
	}
	s.logger.Error(msg, append(fields, zap.Error(err))...)
	return err
}

func (s *roomService) toRoomResponse(ctx context.Context, room *model.Room) (*dto.RoomResponse, error) {
	names, err := s.repo.Student.NamesByRoom(ctx, []string{room.RoomNumber})
	if err != nil {
		s.logger.Error("查询房间学生失败", zap.String("room_number", room.RoomNumber), zap.Error(err))
		return nil, err
	}
	resp := buildRoomResponse(room, names[room.RoomNumber])
	return &resp, nil
}

func buildRoomResponse(room *model.Room, students []string) dto.RoomResponse {
	if students == nil {
		students = []string{}
	}
	return dto.RoomResponse{
		ID:              room.RoomID,
		RoomNumber:      room.RoomNumber,
		Floor:           room.Floor,
		Capacity:        room.Capacity,
		Occupied:        room.Occupied,
		Type:            room.Type,
		Status:          room.Status,
		Rent:            room.Rent,
		LastMaintenance: dto.FormatDatePtr(room.LastMaintenance),
		Amenities:       room.Amenities,
		Students:        students,
	}
}
