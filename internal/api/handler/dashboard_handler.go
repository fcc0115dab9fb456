package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/service"
	"hostel-admin/pkg/response"
)

// DashboardHandler 仪表盘与月度账单
type DashboardHandler struct {
	dashboardSvc service.DashboardService
	billingSvc   service.BillingService
	now          func() time.Time
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService, billingSvc service.BillingService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
		billingSvc:   billingSvc,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Stats 仪表盘统计
// GET /api/dashboard-stats/
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardSvc.Stats(c.Request.Context(), h.now())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// GenerateBills 为当月生成账单，重复调用不会产生重复记录
// POST /api/generate-bills/
func (h *DashboardHandler) GenerateBills(c *gin.Context) {
	result, err := h.billingSvc.GenerateMonthlyBills(c.Request.Context(), h.now())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, dto.GenerateBillsResponse{
		Message:      fmt.Sprintf("%d bills generated successfully for %s", result.BillsCreated, result.Month),
		BillsCreated: result.BillsCreated,
		Month:        result.Month,
	})
}
