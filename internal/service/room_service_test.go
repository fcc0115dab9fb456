package service

import (
	"context"
	"errors"
	"testing"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/model"
)

func newTestRoomService() (RoomService, *mockRepos) {
	repo, m := newMockRepos()
	return NewRoomService(repo, NewActivityService(repo, testLogger()), testLogger()), m
}

func validRoomRequest(number string) *dto.CreateRoomRequest {
	return &dto.CreateRoomRequest{
		RoomNumber: number,
		Floor:      intPtr(1),
		Capacity:   intPtr(2),
		Type:       "double",
		Status:     "available",
		Rent:       floatPtr(5000),
		Amenities:  "wifi, fan",
	}
}

func TestRoomCreate_LogsActivity(t *testing.T) {
	svc, m := newTestRoomService()

	resp, err := svc.Create(context.Background(), validRoomRequest("101"), "admin-1")
	if err != nil {
		t.Fatalf("创建房间失败: %v", err)
	}
	if resp.ID == "" || resp.RoomNumber != "101" || resp.Rent != 5000 {
		t.Errorf("响应字段错误: %+v", resp)
	}
	if resp.Students == nil || len(resp.Students) != 0 {
		t.Errorf("新房间 students 应为空数组，实际 %v", resp.Students)
	}
	if resp.LastMaintenance != nil {
		t.Error("未提供维护日期时应为 null")
	}

	if n := m.activity.countType(model.ActivityRoomAdded); n != 1 {
		t.Fatalf("期望 1 条 room_added 动态，实际 %d", n)
	}
	if got := m.activity.activities[0].Description; got != "New room 101 was added." {
		t.Errorf("动态描述错误: %q", got)
	}
	if stored := m.room.rooms[resp.ID]; stored.CreatedBy == nil || *stored.CreatedBy != "admin-1" {
		t.Error("应写入审计字段 created_by")
	}
}

func TestRoomCreate_DuplicateNumber(t *testing.T) {
	svc, m := newTestRoomService()
	svc.Create(context.Background(), validRoomRequest("101"), "")

	_, err := svc.Create(context.Background(), validRoomRequest("101"), "")
	if !errors.Is(err, ErrRoomNumberTaken) {
		t.Errorf("期望 ErrRoomNumberTaken，实际 %v", err)
	}
	if n := m.activity.countType(model.ActivityRoomAdded); n != 1 {
		t.Errorf("创建失败不应记录动态，实际 %d 条", n)
	}
}

func TestRoomCreate_InvalidMaintenanceDate(t *testing.T) {
	svc, _ := newTestRoomService()
	req := validRoomRequest("101")
	req.LastMaintenance = strPtr("yesterday")

	if _, err := svc.Create(context.Background(), req, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("期望 ErrInvalidInput，实际 %v", err)
	}
}

func TestRoomGet_ListsStudentsByRoomNumber(t *testing.T) {
	svc, m := newTestRoomService()
	created, _ := svc.Create(context.Background(), validRoomRequest("101"), "")
	m.student.students["s1"] = &model.Student{StudentID: "s1", Name: "Alice", RollNumber: "R1", Email: "a@x.io", RoomNumber: strPtr("101")}
	m.student.students["s2"] = &model.Student{StudentID: "s2", Name: "Bob", RollNumber: "R2", Email: "b@x.io", RoomNumber: strPtr("102")}

	resp, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(resp.Students) != 1 || resp.Students[0] != "Alice" {
		t.Errorf("期望 students=[Alice]，实际 %v", resp.Students)
	}
}

func TestRoomList(t *testing.T) {
	svc, m := newTestRoomService()
	svc.Create(context.Background(), validRoomRequest("101"), "")
	occupied := validRoomRequest("102")
	occupied.Status = model.RoomStatusOccupied
	svc.Create(context.Background(), occupied, "")
	m.student.students["s1"] = &model.Student{StudentID: "s1", Name: "Carol", RollNumber: "R3", Email: "c@x.io", RoomNumber: strPtr("102")}

	all, err := svc.List(context.Background(), &dto.RoomListRequest{})
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("期望 2 间房，实际 %d", len(all))
	}
	if len(all[0].Students) != 0 || len(all[1].Students) != 1 {
		t.Errorf("students 匹配错误: %+v", all)
	}

	filtered, _ := svc.List(context.Background(), &dto.RoomListRequest{Status: model.RoomStatusOccupied})
	if len(filtered) != 1 || filtered[0].RoomNumber != "102" {
		t.Errorf("按状态过滤错误: %+v", filtered)
	}
}

func TestRoomUpdate_PartialAndActivity(t *testing.T) {
	svc, m := newTestRoomService()
	created, _ := svc.Create(context.Background(), validRoomRequest("101"), "")

	resp, err := svc.Update(context.Background(), created.ID, &dto.UpdateRoomRequest{
		Rent:            floatPtr(5500),
		LastMaintenance: strPtr("2025-02-01"),
	}, "")
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if resp.Rent != 5500 || resp.Type != "double" {
		t.Errorf("部分更新结果错误: %+v", resp)
	}
	if resp.LastMaintenance == nil || *resp.LastMaintenance != "2025-02-01" {
		t.Errorf("维护日期错误: %v", resp.LastMaintenance)
	}
	if n := m.activity.countType(model.ActivityRoomUpdated); n != 1 {
		t.Errorf("期望 1 条 room_updated 动态，实际 %d", n)
	}
}

func TestRoomUpdate_PutClearsMaintenanceDate(t *testing.T) {
	svc, _ := newTestRoomService()
	req := validRoomRequest("101")
	req.LastMaintenance = strPtr("2025-01-01")
	created, _ := svc.Create(context.Background(), req, "")

	resp, err := svc.Update(context.Background(), created.ID, validRoomRequest("101").AsUpdate(), "")
	if err != nil {
		t.Fatalf("整体更新失败: %v", err)
	}
	if resp.LastMaintenance != nil {
		t.Error("整体替换未提供维护日期时应清空")
	}
}

func TestRoomDelete_KeepsFeeRecords(t *testing.T) {
	svc, m := newTestRoomService()
	created, _ := svc.Create(context.Background(), validRoomRequest("101"), "")
	m.feeRecord.records["f1"] = &model.FeeRecord{FeeRecordID: "f1", RoomNumber: "101"}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("删除后期望 ErrRoomNotFound，实际 %v", err)
	}
	if rec := m.feeRecord.records["f1"]; rec == nil || rec.RoomNumber != "101" {
		t.Error("删除房间不应影响费用记录")
	}
}

func TestRoomCreate_ActivityFailureStillSucceeds(t *testing.T) {
	svc, m := newTestRoomService()
	m.activity.createErr = errors.New("activities 表不可写")

	resp, err := svc.Create(context.Background(), validRoomRequest("101"), "")
	if err != nil {
		t.Fatalf("动态写入失败不应影响业务结果: %v", err)
	}
	if _, ok := m.room.rooms[resp.ID]; !ok {
		t.Error("房间应已保存")
	}
}
