package dto

// ── 学生模块 DTO ──

// CreateStudentRequest 创建/整体替换学生请求
type CreateStudentRequest struct {
	Name       string  `json:"name"       binding:"required,max=100"`
	RollNumber string  `json:"rollNumber" binding:"required,max=20"`
	Email      string  `json:"email"      binding:"required,email,max=254"`
	Phone      string  `json:"phone"      binding:"required,max=20"`
	RoomNumber *string `json:"roomNumber" binding:"omitempty,max=10"`
	Course     string  `json:"course"     binding:"required,max=100"`
	Year       string  `json:"year"       binding:"required,max=50"`
	Status     string  `json:"status"     binding:"required,max=50"`
	JoinDate   string  `json:"joinDate"   binding:"required,datetime=2006-01-02"`
	FeeStatus  string  `json:"feeStatus"  binding:"required,max=50"`
}

// AsUpdate 将整体替换请求转换为全字段更新
func (r *CreateStudentRequest) AsUpdate() *UpdateStudentRequest {
	roomNumber := r.RoomNumber
	if roomNumber == nil {
		empty := ""
		roomNumber = &empty
	}
	return &UpdateStudentRequest{
		Name:       &r.Name,
		RollNumber: &r.RollNumber,
		Email:      &r.Email,
		Phone:      &r.Phone,
		RoomNumber: roomNumber,
		Course:     &r.Course,
		Year:       &r.Year,
		Status:     &r.Status,
		JoinDate:   &r.JoinDate,
		FeeStatus:  &r.FeeStatus,
	}
}

// UpdateStudentRequest 部分更新学生请求，roomNumber 传空串表示退房
type UpdateStudentRequest struct {
	Name       *string `json:"name"       binding:"omitempty,min=1,max=100"`
	RollNumber *string `json:"rollNumber" binding:"omitempty,min=1,max=20"`
	Email      *string `json:"email"      binding:"omitempty,email,max=254"`
	Phone      *string `json:"phone"      binding:"omitempty,max=20"`
	RoomNumber *string `json:"roomNumber" binding:"omitempty,max=10"`
	Course     *string `json:"course"     binding:"omitempty,max=100"`
	Year       *string `json:"year"       binding:"omitempty,max=50"`
	Status     *string `json:"status"     binding:"omitempty,max=50"`
	JoinDate   *string `json:"joinDate"   binding:"omitempty,datetime=2006-01-02"`
	FeeStatus  *string `json:"feeStatus"  binding:"omitempty,max=50"`
}

// StudentListRequest 学生列表查询参数
type StudentListRequest struct {
	Status     string `form:"status"`
	RoomNumber string `form:"roomNumber"`
}

// StudentResponse 学生响应
type StudentResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	RollNumber string  `json:"rollNumber"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	RoomNumber *string `json:"roomNumber"`
	Course     string  `json:"course"`
	Year       string  `json:"year"`
	Status     string  `json:"status"`
	JoinDate   string  `json:"joinDate"`
	FeeStatus  string  `json:"feeStatus"`
}
