package dto

// ── 仪表盘与账单 DTO ──

// CountStat 计数指标及环比变化（百分比，保留一位小数）
type CountStat struct {
	Value  int64   `json:"value"`
	Change float64 `json:"change"`
}

// AmountStat 金额指标及环比变化
type AmountStat struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

// DashboardStatsResponse 仪表盘统计
type DashboardStatsResponse struct {
	TotalStudents     CountStat  `json:"totalStudents"`
	TotalRooms        CountStat  `json:"totalRooms"`
	OccupiedRooms     CountStat  `json:"occupiedRooms"`
	PendingComplaints CountStat  `json:"pendingComplaints"`
	TotalRevenue      AmountStat `json:"totalRevenue"`
	PendingFees       int64      `json:"pendingFees"`
}

// GenerateBillsResult 月度账单生成结果
type GenerateBillsResult struct {
	BillsCreated int    `json:"billsCreated"`
	Month        string `json:"month"`
}

// GenerateBillsResponse 账单生成接口响应
type GenerateBillsResponse struct {
	Message      string `json:"message"`
	BillsCreated int    `json:"billsCreated"`
	Month        string `json:"month"`
}
