package handler

import "hostel-admin/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Room      *RoomHandler
	Student   *StudentHandler
	FeeRecord *FeeRecordHandler
	Complaint *ComplaintHandler
	Activity  *ActivityHandler
	Dashboard *DashboardHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Room:      NewRoomHandler(svc.Room),
		Student:   NewStudentHandler(svc.Student),
		FeeRecord: NewFeeRecordHandler(svc.FeeRecord, svc.Export),
		Complaint: NewComplaintHandler(svc.Complaint),
		Activity:  NewActivityHandler(svc.Activity),
		Dashboard: NewDashboardHandler(svc.Dashboard, svc.Billing),
	}
}
