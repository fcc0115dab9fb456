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

// MonthLabelLayout 月份标签格式，如 "March 2025"，同时作为费用记录的月度键
const MonthLabelLayout = "January 2006"

// DefaultDueInDays 账单默认到期天数
const DefaultDueInDays = 10

// BillingService 月度账单生成
type BillingService interface {
	// GenerateMonthlyBills 为所有已分配房间的在住学生生成当月账单
	// 同月重复调用不会产生重复记录；生成 0 条是正常结果
	GenerateMonthlyBills(ctx context.Context, today time.Time) (*dto.GenerateBillsResult, error)
}

type billingService struct {
	repo      *repository.Repository
	activity  ActivityService
	dueInDays int
	logger    *zap.Logger
}

// NewBillingService 创建 BillingService 实例，dueInDays <= 0 时使用默认值
func NewBillingService(repo *repository.Repository, activity ActivityService, dueInDays int, logger *zap.Logger) BillingService {
	if dueInDays <= 0 {
		dueInDays = DefaultDueInDays
	}
	return &billingService{repo: repo, activity: activity, dueInDays: dueInDays, logger: logger}
}

// MonthLabel 返回日期所在月份的标签
func MonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}

func (s *billingService) GenerateMonthlyBills(ctx context.Context, today time.Time) (*dto.GenerateBillsResult, error) {
	month := MonthLabel(today)
	dueDate := dto.TruncateDate(today).AddDate(0, 0, s.dueInDays)

	students, err := s.repo.Student.ListActiveWithRoom(ctx)
	if err != nil {
		s.logger.Error("查询在住学生失败", zap.Error(err))
		return nil, err
	}

	// 同一批次内按房间号缓存，避免重复查询
	rooms := make(map[string]*model.Room)
	created := 0

	for i := range students {
		st := &students[i]
		if st.Status != model.StudentStatusActive || !st.HasRoom() {
			continue
		}

		exists, err := s.repo.FeeRecord.ExistsForMonth(ctx, st.RollNumber, month)
		if err != nil {
			s.logger.Error("检查当月账单失败", zap.String("roll_number", st.RollNumber), zap.Error(err))
			return nil, err
		}
		if exists {
			continue
		}

		room, err := s.lookupRoom(ctx, rooms, *st.RoomNumber)
		if err != nil {
			return nil, err
		}
		if room == nil {
			// 房间号无匹配房间：跳过该学生，不视为错误
			s.logger.Warn("学生房间不存在，跳过账单生成",
				zap.String("roll_number", st.RollNumber),
				zap.String("room_number", *st.RoomNumber),
			)
			continue
		}

		rec := &model.FeeRecord{
			StudentName: st.Name,
			RollNumber:  st.RollNumber,
			RoomNumber:  *st.RoomNumber,
			Month:       month,
			Amount:      room.Rent,
			DueDate:     dueDate,
			Status:      model.FeeStatusPending,
		}
		inserted, err := s.repo.FeeRecord.CreateIfAbsent(ctx, rec)
		if err != nil {
			s.logger.Error("创建账单失败", zap.String("roll_number", st.RollNumber), zap.Error(err))
			return nil, err
		}
		if inserted {
			created++
		}
	}

	if created > 0 {
		s.activity.Log(ctx, model.ActivityBillsGenerated,
			fmt.Sprintf("%d fee bills were generated for %s.", created, month))
	}

	s.logger.Info("月度账单生成完成", zap.String("month", month), zap.Int("bills_created", created))

	return &dto.GenerateBillsResult{BillsCreated: created, Month: month}, nil
}

// lookupRoom 房间不存在时返回 (nil, nil)
func (s *billingService) lookupRoom(ctx context.Context, cache map[string]*model.Room, roomNumber string) (*model.Room, error) {
	if room, ok := cache[roomNumber]; ok {
		return room, nil
	}

	room, err := s.repo.Room.GetByNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cache[roomNumber] = nil
			return nil, nil
		}
		s.logger.Error("查询房间失败", zap.String("room_number", roomNumber), zap.Error(err))
		return nil, err
	}

	cache[roomNumber] = room
	return room, nil
}
