package service

import (
	"context"
	"testing"
	"time"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/model"
)

func newTestComplaintService() (ComplaintService, *mockRepos) {
	repo, m := newMockRepos()
	return NewComplaintService(repo, NewActivityService(repo, testLogger()), testLogger()), m
}

func validComplaintRequest() *dto.CreateComplaintRequest {
	return &dto.CreateComplaintRequest{
		Title:       "Leaking tap",
		Description: "Bathroom tap leaks all night",
		StudentName: "Alice",
		RoomNumber:  "101",
		Category:    "plumbing",
		Priority:    "high",
	}
}

func TestComplaintCreate_DefaultsAndActivity(t *testing.T) {
	svc, m := newTestComplaintService()

	resp, err := svc.Create(context.Background(), validComplaintRequest(), "")
	if err != nil {
		t.Fatalf("创建投诉失败: %v", err)
	}
	if resp.Status != model.ComplaintStatusPending {
		t.Errorf("默认状态应为 pending，实际 %q", resp.Status)
	}
	if resp.DateSubmitted != time.Now().UTC().Format(dto.DateLayout) {
		t.Errorf("提交日期应为当天，实际 %q", resp.DateSubmitted)
	}
	if resp.DateResolved != nil {
		t.Error("dateResolved 应为 null")
	}
	if n := m.activity.countType(model.ActivityComplaintFiled); n != 1 {
		t.Fatalf("期望 1 条 complaint_filed 动态，实际 %d", n)
	}
	if got := m.activity.activities[0].Description; got != `New complaint filed: "Leaking tap"` {
		t.Errorf("动态描述错误: %q", got)
	}
}

func TestComplaintUpdate_ResolvedLogsActivity(t *testing.T) {
	svc, m := newTestComplaintService()
	created, _ := svc.Create(context.Background(), validComplaintRequest(), "")

	inProgress := "in-progress"
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateComplaintRequest{Status: &inProgress}, ""); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if n := m.activity.countType(model.ActivityComplaintResolved); n != 0 {
		t.Fatalf("未解决时不应记录 complaint_resolved，实际 %d", n)
	}

	resolved := model.ComplaintStatusResolved
	resp, err := svc.Update(context.Background(), created.ID, &dto.UpdateComplaintRequest{
		Status:       &resolved,
		DateResolved: strPtr("2025-03-20"),
	}, "")
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if resp.DateResolved == nil || *resp.DateResolved != "2025-03-20" {
		t.Errorf("dateResolved 错误: %v", resp.DateResolved)
	}
	if resp.DateSubmitted != created.DateSubmitted {
		t.Error("提交日期不应改变")
	}
	if n := m.activity.countType(model.ActivityComplaintResolved); n != 1 {
		t.Errorf("期望 1 条 complaint_resolved 动态，实际 %d", n)
	}
}

func TestComplaintList_StatusFilter(t *testing.T) {
	svc, _ := newTestComplaintService()
	svc.Create(context.Background(), validComplaintRequest(), "")
	resolvedReq := validComplaintRequest()
	resolvedReq.Status = model.ComplaintStatusResolved
	svc.Create(context.Background(), resolvedReq, "")

	pending, err := svc.List(context.Background(), &dto.ComplaintListRequest{Status: model.ComplaintStatusPending})
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("期望 1 条待处理投诉，实际 %d", len(pending))
	}
}

func TestComplaintActivity_TitleKeptVerbatim(t *testing.T) {
	svc, m := newTestComplaintService()
	req := validComplaintRequest()
	req.Title = `Tap "hot" C:\ 水龙头`

	created, err := svc.Create(context.Background(), req, "")
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	resolved := model.ComplaintStatusResolved
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateComplaintRequest{Status: &resolved}, ""); err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	want := []string{
		`New complaint filed: "Tap "hot" C:\ 水龙头"`,
		`Complaint "Tap "hot" C:\ 水龙头" has been resolved.`,
	}
	if len(m.activity.activities) != len(want) {
		t.Fatalf("期望 %d 条动态，实际 %d", len(want), len(m.activity.activities))
	}
	for i, w := range want {
		if got := m.activity.activities[i].Description; got != w {
			t.Errorf("动态 %d: got %q, want %q", i, got, w)
		}
	}
}
