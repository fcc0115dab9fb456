package dto

// ── 房间模块 DTO ──

// CreateRoomRequest 创建/整体替换房间请求（POST / PUT）
type CreateRoomRequest struct {
	RoomNumber      string   `json:"roomNumber"      binding:"required,max=10"`
	Floor           *int     `json:"floor"           binding:"required"`
	Capacity        *int     `json:"capacity"        binding:"required,min=0"`
	Occupied        int      `json:"occupied"        binding:"min=0"`
	Type            string   `json:"type"            binding:"required,max=50"`
	Status          string   `json:"status"          binding:"required,max=50"`
	Rent            *float64 `json:"rent"            binding:"required,min=0"`
	LastMaintenance *string  `json:"lastMaintenance" binding:"omitempty,eq=|datetime=2006-01-02"`
	Amenities       string   `json:"amenities"`
}

// AsUpdate 将整体替换请求转换为全字段更新
func (r *CreateRoomRequest) AsUpdate() *UpdateRoomRequest {
	lastMaintenance := r.LastMaintenance
	if lastMaintenance == nil {
		empty := ""
		lastMaintenance = &empty
	}
	return &UpdateRoomRequest{
		RoomNumber:      &r.RoomNumber,
		Floor:           r.Floor,
		Capacity:        r.Capacity,
		Occupied:        &r.Occupied,
		Type:            &r.Type,
		Status:          &r.Status,
		Rent:            r.Rent,
		LastMaintenance: lastMaintenance,
		Amenities:       &r.Amenities,
	}
}

// UpdateRoomRequest 部分更新房间请求（PATCH）
// 可空日期字段传空串表示清空
type UpdateRoomRequest struct {
	RoomNumber      *string  `json:"roomNumber"      binding:"omitempty,min=1,max=10"`
	Floor           *int     `json:"floor"`
	Capacity        *int     `json:"capacity"        binding:"omitempty,min=0"`
	Occupied        *int     `json:"occupied"        binding:"omitempty,min=0"`
	Type            *string  `json:"type"            binding:"omitempty,max=50"`
	Status          *string  `json:"status"          binding:"omitempty,max=50"`
	Rent            *float64 `json:"rent"            binding:"omitempty,min=0"`
	LastMaintenance *string  `json:"lastMaintenance" binding:"omitempty,eq=|datetime=2006-01-02"`
	Amenities       *string  `json:"amenities"`
}

// RoomListRequest 房间列表查询参数
type RoomListRequest struct {
	Status string `form:"status"`
}

// RoomResponse 房间响应，students 为读取时按房间号匹配的学生姓名
type RoomResponse struct {
	ID              string   `json:"id"`
	RoomNumber      string   `json:"roomNumber"`
	Floor           int      `json:"floor"`
	Capacity        int      `json:"capacity"`
	Occupied        int      `json:"occupied"`
	Type            string   `json:"type"`
	Status          string   `json:"status"`
	Rent            float64  `json:"rent"`
	LastMaintenance *string  `json:"lastMaintenance"`
	Amenities       string   `json:"amenities"`
	Students        []string `json:"students"`
}
