package dto

// ── 费用记录模块 DTO ──

// CreateFeeRecordRequest 创建/整体替换费用记录请求
type CreateFeeRecordRequest struct {
	StudentName   string   `json:"studentName"   binding:"required,max=100"`
	RollNumber    string   `json:"rollNumber"    binding:"required,max=20"`
	RoomNumber    string   `json:"roomNumber"    binding:"required,max=10"`
	Month         string   `json:"month"         binding:"required,max=50"`
	Amount        *float64 `json:"amount"        binding:"required,min=0"`
	DueDate       string   `json:"dueDate"       binding:"required,datetime=2006-01-02"`
	PaidDate      *string  `json:"paidDate"      binding:"omitempty,eq=|datetime=2006-01-02"`
	Status        string   `json:"status"        binding:"required,max=50"`
	PaymentMethod *string  `json:"paymentMethod" binding:"omitempty,max=50"`
	TransactionID *string  `json:"transactionId" binding:"omitempty,max=100"`
	LateFee       float64  `json:"lateFee"       binding:"min=0"`
	Notes         *string  `json:"notes"`
}

// AsUpdate 将整体替换请求转换为全字段更新
func (r *CreateFeeRecordRequest) AsUpdate() *UpdateFeeRecordRequest {
	empty := ""
	orEmpty := func(s *string) *string {
		if s == nil {
			return &empty
		}
		return s
	}
	return &UpdateFeeRecordRequest{
		StudentName:   &r.StudentName,
		RollNumber:    &r.RollNumber,
		RoomNumber:    &r.RoomNumber,
		Month:         &r.Month,
		Amount:        r.Amount,
		DueDate:       &r.DueDate,
		PaidDate:      orEmpty(r.PaidDate),
		Status:        &r.Status,
		PaymentMethod: orEmpty(r.PaymentMethod),
		TransactionID: orEmpty(r.TransactionID),
		LateFee:       &r.LateFee,
		Notes:         orEmpty(r.Notes),
	}
}

// UpdateFeeRecordRequest 部分更新费用记录请求
// 可空字段（paidDate、paymentMethod、transactionId、notes）传空串表示清空
type UpdateFeeRecordRequest struct {
	StudentName   *string  `json:"studentName"   binding:"omitempty,min=1,max=100"`
	RollNumber    *string  `json:"rollNumber"    binding:"omitempty,min=1,max=20"`
	RoomNumber    *string  `json:"roomNumber"    binding:"omitempty,max=10"`
	Month         *string  `json:"month"         binding:"omitempty,min=1,max=50"`
	Amount        *float64 `json:"amount"        binding:"omitempty,min=0"`
	DueDate       *string  `json:"dueDate"       binding:"omitempty,datetime=2006-01-02"`
	PaidDate      *string  `json:"paidDate"      binding:"omitempty,eq=|datetime=2006-01-02"`
	Status        *string  `json:"status"        binding:"omitempty,max=50"`
	PaymentMethod *string  `json:"paymentMethod" binding:"omitempty,max=50"`
	TransactionID *string  `json:"transactionId" binding:"omitempty,max=100"`
	LateFee       *float64 `json:"lateFee"       binding:"omitempty,min=0"`
	Notes         *string  `json:"notes"`
}

// FeeRecordListRequest 费用记录列表/导出查询参数
type FeeRecordListRequest struct {
	Status string `form:"status"`
	Month  string `form:"month"`
}

// FeeRecordResponse 费用记录响应
type FeeRecordResponse struct {
	ID            string  `json:"id"`
	StudentName   string  `json:"studentName"`
	RollNumber    string  `json:"rollNumber"`
	RoomNumber    string  `json:"roomNumber"`
	Month         string  `json:"month"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"dueDate"`
	PaidDate      *string `json:"paidDate"`
	Status        string  `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
	TransactionID *string `json:"transactionId"`
	LateFee       float64 `json:"lateFee"`
	Notes         *string `json:"notes"`
}
