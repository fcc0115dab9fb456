package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/service"
	"hostel-admin/pkg/response"
)

// RoomHandler 房间模块 HTTP 处理器
type RoomHandler struct {
	roomSvc service.RoomService
}

// NewRoomHandler 创建 RoomHandler
func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// ListRooms 获取房间列表
// GET /api/rooms/
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var req dto.RoomListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rooms, err := h.roomSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, rooms)
}

// GetRoom 获取房间详情
// GET /api/rooms/:id/
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.roomSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.OK(c, room)
}

// CreateRoom 创建房间
// POST /api/rooms/
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := h.roomSvc.Create(c.Request.Context(), &req, OptionalUserID(c))
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.Created(c, room)
}

// ReplaceRoom 整体替换房间
// PUT /api/rooms/:id/
func (h *RoomHandler) ReplaceRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := h.roomSvc.Update(c.Request.Context(), c.Param("id"), req.AsUpdate(), OptionalUserID(c))
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.OK(c, room)
}

// UpdateRoom 部分更新房间
// PATCH /api/rooms/:id/
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := h.roomSvc.Update(c.Request.Context(), c.Param("id"), &req, OptionalUserID(c))
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.OK(c, room)
}

// DeleteRoom 删除房间
// DELETE /api/rooms/:id/
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.roomSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.NoContent(c)
}

// handleRoomError 统一处理房间模块业务错误
func (h *RoomHandler) handleRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, "Room not found.")
	case errors.Is(err, service.ErrRoomNumberTaken):
		response.ValidationError(c, "Invalid input.", map[string]string{
			"roomNumber": "room with this room number already exists.",
		})
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, response.CodeValidation, "Invalid input.")
	default:
		response.InternalError(c)
	}
}
