package dto

// ── 投诉模块 DTO ──

// CreateComplaintRequest 创建/整体替换投诉请求
// dateSubmitted 由服务端在创建时写入，不接受客户端传值
type CreateComplaintRequest struct {
	Title        string  `json:"title"        binding:"required,max=200"`
	Description  string  `json:"description"  binding:"required"`
	StudentName  string  `json:"studentName"  binding:"required,max=100"`
	RoomNumber   string  `json:"roomNumber"   binding:"required,max=10"`
	Category     string  `json:"category"     binding:"required,max=50"`
	Priority     string  `json:"priority"     binding:"required,max=50"`
	Status       string  `json:"status"       binding:"omitempty,max=50"`
	DateResolved *string `json:"dateResolved" binding:"omitempty,eq=|datetime=2006-01-02"`
	AssignedTo   string  `json:"assignedTo"   binding:"omitempty,max=100"`
}

// AsUpdate 将整体替换请求转换为全字段更新
func (r *CreateComplaintRequest) AsUpdate() *UpdateComplaintRequest {
	status := r.Status
	if status == "" {
		status = "pending"
	}
	dateResolved := r.DateResolved
	if dateResolved == nil {
		empty := ""
		dateResolved = &empty
	}
	return &UpdateComplaintRequest{
		Title:        &r.Title,
		Description:  &r.Description,
		StudentName:  &r.StudentName,
		RoomNumber:   &r.RoomNumber,
		Category:     &r.Category,
		Priority:     &r.Priority,
		Status:       &status,
		DateResolved: dateResolved,
		AssignedTo:   &r.AssignedTo,
	}
}

// UpdateComplaintRequest 部分更新投诉请求，dateResolved 传空串表示清空
type UpdateComplaintRequest struct {
	Title        *string `json:"title"        binding:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	StudentName  *string `json:"studentName"  binding:"omitempty,max=100"`
	RoomNumber   *string `json:"roomNumber"   binding:"omitempty,max=10"`
	Category     *string `json:"category"     binding:"omitempty,max=50"`
	Priority     *string `json:"priority"     binding:"omitempty,max=50"`
	Status       *string `json:"status"       binding:"omitempty,max=50"`
	DateResolved *string `json:"dateResolved" binding:"omitempty,eq=|datetime=2006-01-02"`
	AssignedTo   *string `json:"assignedTo"   binding:"omitempty,max=100"`
}

// ComplaintListRequest 投诉列表查询参数
type ComplaintListRequest struct {
	Status string `form:"status"`
}

// ComplaintResponse 投诉响应
type ComplaintResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	StudentName   string  `json:"studentName"`
	RoomNumber    string  `json:"roomNumber"`
	Category      string  `json:"category"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	DateSubmitted string  `json:"dateSubmitted"`
	DateResolved  *string `json:"dateResolved"`
	AssignedTo    string  `json:"assignedTo"`
}
