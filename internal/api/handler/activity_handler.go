package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hostel-admin/internal/service"
	"hostel-admin/pkg/response"
)

// ActivityHandler 操作动态（只读）
type ActivityHandler struct {
	activitySvc service.ActivityService
}

// NewActivityHandler 创建 ActivityHandler
func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// ListActivities 最近 10 条动态，按时间倒序
// GET /api/activities/
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.activitySvc.Recent(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, activities)
}

// GetActivity GET /api/activities/:id/
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	activity, err := h.activitySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.NotFound(c, "Activity not found.")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, activity)
}
