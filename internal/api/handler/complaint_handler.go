package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/service"
	"hostel-admin/pkg/response"
)

// ComplaintHandler 投诉模块 HTTP 处理器
type ComplaintHandler struct {
	complaintSvc service.ComplaintService
}

// NewComplaintHandler 创建 ComplaintHandler
func NewComplaintHandler(complaintSvc service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintSvc: complaintSvc}
}

// ListComplaints GET /api/complaints/?status=
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	var req dto.ComplaintListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	complaints, err := h.complaintSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, complaints)
}

// GetComplaint GET /api/complaints/:id/
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaint, err := h.complaintSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleComplaintError(c, err)
		return
	}

	response.OK(c, complaint)
}

// CreateComplaint POST /api/complaints/
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	complaint, err := h.complaintSvc.Create(c.Request.Context(), &req, OptionalUserID(c))
	if err != nil {
		h.handleComplaintError(c, err)
		return
	}

	response.Created(c, complaint)
}

// ReplaceComplaint PUT /api/complaints/:id/
func (h *ComplaintHandler) ReplaceComplaint(c *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	complaint, err := h.complaintSvc.Update(c.Request.Context(), c.Param("id"), req.AsUpdate(), OptionalUserID(c))
	if err != nil {
		h.handleComplaintError(c, err)
		return
	}

	response.OK(c, complaint)
}

// UpdateComplaint PATCH /api/complaints/:id/
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	var req dto.UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	complaint, err := h.complaintSvc.Update(c.Request.Context(), c.Param("id"), &req, OptionalUserID(c))
	if err != nil {
		h.handleComplaintError(c, err)
		return
	}

	response.OK(c, complaint)
}

// DeleteComplaint DELETE /api/complaints/:id/
func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	if err := h.complaintSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleComplaintError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *ComplaintHandler) handleComplaintError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrComplaintNotFound):
		response.NotFound(c, "Complaint not found.")
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, response.CodeValidation, "Invalid input.")
	default:
		response.InternalError(c)
	}
}
