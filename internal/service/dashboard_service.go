package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/model"
	"hostel-admin/internal/repository"
)

// DashboardService 仪表盘统计
type DashboardService interface {
	Stats(ctx context.Context, today time.Time) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// PercentChange 环比变化百分比，保留一位小数（银行家舍入）
// 基期为 0 时：当期 > 0 记为 100，否则为 0
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100.0
		}
		return 0.0
	}
	return math.RoundToEven((current-previous)/previous*100*10) / 10
}

// MonthBounds 返回当月第一天与上月第一天
func MonthBounds(today time.Time) (currentMonthStart, lastMonthStart time.Time) {
	currentMonthStart = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonthEnd := currentMonthStart.AddDate(0, 0, -1)
	lastMonthStart = time.Date(lastMonthEnd.Year(), lastMonthEnd.Month(), 1, 0, 0, 0, 0, time.UTC)
	return currentMonthStart, lastMonthStart
}

func (s *dashboardService) Stats(ctx context.Context, today time.Time) (*dto.DashboardStatsResponse, error) {
	currentMonthStart, lastMonthStart := MonthBounds(today)

	fail := func(metric string, err error) (*dto.DashboardStatsResponse, error) {
		s.logger.Error("统计仪表盘数据失败", zap.String("metric", metric), zap.Error(err))
		return nil, err
	}

	// 1. 学生：当前总数 vs 本月之前入住的人数
	totalStudents, err := s.repo.Student.Count(ctx)
	if err != nil {
		return fail("total_students", err)
	}
	prevStudents, err := s.repo.Student.CountJoinedBefore(ctx, currentMonthStart)
	if err != nil {
		return fail("prev_students", err)
	}

	// 2. 房间：不计算环比
	totalRooms, err := s.repo.Room.Count(ctx)
	if err != nil {
		return fail("total_rooms", err)
	}
	occupiedRooms, err := s.repo.Room.CountByStatus(ctx, model.RoomStatusOccupied)
	if err != nil {
		return fail("occupied_rooms", err)
	}

	// 3. 投诉：当前待处理 vs 本月之前提交且仍待处理
	pendingComplaints, err := s.repo.Complaint.CountByStatus(ctx, model.ComplaintStatusPending)
	if err != nil {
		return fail("pending_complaints", err)
	}
	prevComplaints, err := s.repo.Complaint.CountByStatusSubmittedBefore(ctx, model.ComplaintStatusPending, currentMonthStart)
	if err != nil {
		return fail("prev_complaints", err)
	}

	// 4. 收入：本月已缴 vs 上月已缴
	currentRevenue, err := s.repo.FeeRecord.SumPaidBetween(ctx, currentMonthStart, nil)
	if err != nil {
		return fail("current_revenue", err)
	}
	prevRevenue, err := s.repo.FeeRecord.SumPaidBetween(ctx, lastMonthStart, &currentMonthStart)
	if err != nil {
		return fail("prev_revenue", err)
	}

	// 5. 待缴费用：pending 或 overdue
	pendingFees, err := s.repo.FeeRecord.CountByStatuses(ctx, model.FeeStatusPending, model.FeeStatusOverdue)
	if err != nil {
		return fail("pending_fees", err)
	}

	return &dto.DashboardStatsResponse{
		TotalStudents: dto.CountStat{
			Value:  totalStudents,
			Change: PercentChange(float64(totalStudents), float64(prevStudents)),
		},
		TotalRooms:    dto.CountStat{Value: totalRooms, Change: 0},
		OccupiedRooms: dto.CountStat{Value: occupiedRooms, Change: 0},
		PendingComplaints: dto.CountStat{
			Value:  pendingComplaints,
			Change: PercentChange(float64(pendingComplaints), float64(prevComplaints)),
		},
		TotalRevenue: dto.AmountStat{
			Value:  currentRevenue,
			Change: PercentChange(currentRevenue, prevRevenue),
		},
		PendingFees: pendingFees,
	}, nil
}
