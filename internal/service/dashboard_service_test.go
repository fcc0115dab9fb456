package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hostel-admin/internal/model"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{"both zero", 0, 0, 0},
		{"from zero", 5, 0, 100},
		{"growth", 10, 8, 25},
		{"decline", 8, 10, -20},
		{"no change", 7, 7, 0},
		{"one decimal", 2, 3, -33.3},
		{"rounds up", 5, 3, 66.7},
		{"half rounds to even", 17, 16, 6.2},
		{"negative half rounds to even", 15, 16, -6.2},
		{"half rounds up to even", 27, 16, 68.8},
		{"current zero", 0, 4, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentChange(tt.current, tt.previous); got != tt.want {
				t.Errorf("PercentChange(%v, %v) = %v，期望 %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	cur, prev := MonthBounds(time.Date(2025, time.January, 20, 15, 0, 0, 0, time.UTC))
	if !cur.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("当月起始错误: %v", cur)
	}
	if !prev.Equal(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("上月起始跨年错误: %v", prev)
	}
}

func TestDashboardStats(t *testing.T) {
	repo, m := newMockRepos()
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	// 10 名学生，其中 8 名在本月之前入住
	for i := 0; i < 10; i++ {
		join := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		if i >= 8 {
			join = time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
		}
		id := fmt.Sprintf("s-%d", i)
		m.student.students[id] = &model.Student{StudentID: id, JoinDate: join}
	}

	m.room.rooms["r1"] = &model.Room{RoomID: "r1", RoomNumber: "101", Status: model.RoomStatusOccupied}
	m.room.rooms["r2"] = &model.Room{RoomID: "r2", RoomNumber: "102", Status: "available"}
	m.room.rooms["r3"] = &model.Room{RoomID: "r3", RoomNumber: "103", Status: model.RoomStatusOccupied}

	// 待处理投诉：本月 1 条、之前 2 条；已解决的不计入
	m.complaint.complaints["c1"] = &model.Complaint{ComplaintID: "c1", Status: model.ComplaintStatusPending, DateSubmitted: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)}
	m.complaint.complaints["c2"] = &model.Complaint{ComplaintID: "c2", Status: model.ComplaintStatusPending, DateSubmitted: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)}
	m.complaint.complaints["c3"] = &model.Complaint{ComplaintID: "c3", Status: model.ComplaintStatusPending, DateSubmitted: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)}
	m.complaint.complaints["c4"] = &model.Complaint{ComplaintID: "c4", Status: model.ComplaintStatusResolved, DateSubmitted: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)}

	// 收入：本月 6000，上月 4000
	m.feeRecord.records["f1"] = &model.FeeRecord{FeeRecordID: "f1", RollNumber: "R1", Month: "March 2025", Amount: 6000, Status: model.FeeStatusPaid, PaidDate: datePtr(2025, time.March, 5)}
	m.feeRecord.records["f2"] = &model.FeeRecord{FeeRecordID: "f2", RollNumber: "R1", Month: "February 2025", Amount: 4000, Status: model.FeeStatusPaid, PaidDate: datePtr(2025, time.February, 28)}
	m.feeRecord.records["f3"] = &model.FeeRecord{FeeRecordID: "f3", RollNumber: "R2", Month: "March 2025", Amount: 5000, Status: model.FeeStatusPending}
	m.feeRecord.records["f4"] = &model.FeeRecord{FeeRecordID: "f4", RollNumber: "R3", Month: "February 2025", Amount: 5000, Status: model.FeeStatusOverdue}
	m.feeRecord.records["f5"] = &model.FeeRecord{FeeRecordID: "f5", RollNumber: "R4", Month: "January 2025", Amount: 3000, Status: model.FeeStatusPaid, PaidDate: datePtr(2025, time.January, 20)}

	svc := NewDashboardService(repo, testLogger())
	stats, err := svc.Stats(context.Background(), today)
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}

	if stats.TotalStudents.Value != 10 || stats.TotalStudents.Change != 25.0 {
		t.Errorf("学生统计错误: %+v", stats.TotalStudents)
	}
	if stats.TotalRooms.Value != 3 || stats.TotalRooms.Change != 0 {
		t.Errorf("房间统计错误: %+v", stats.TotalRooms)
	}
	if stats.OccupiedRooms.Value != 2 || stats.OccupiedRooms.Change != 0 {
		t.Errorf("已入住房间统计错误: %+v", stats.OccupiedRooms)
	}
	if stats.PendingComplaints.Value != 3 || stats.PendingComplaints.Change != 50.0 {
		t.Errorf("待处理投诉统计错误: %+v", stats.PendingComplaints)
	}
	if stats.TotalRevenue.Value != 6000 || stats.TotalRevenue.Change != 50.0 {
		t.Errorf("收入统计错误: %+v", stats.TotalRevenue)
	}
	if stats.PendingFees != 2 {
		t.Errorf("期望待缴费用 2 条，实际 %d", stats.PendingFees)
	}
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewDashboardService(repo, testLogger())

	stats, err := svc.Stats(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if stats.TotalStudents.Change != 0 || stats.TotalRevenue.Change != 0 || stats.PendingComplaints.Change != 0 {
		t.Errorf("空数据时环比应全部为 0: %+v", stats)
	}
}
