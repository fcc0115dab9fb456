package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/service"
	"hostel-admin/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FeeRecordHandler 费用记录模块 HTTP 处理器（含 Excel 导出）
type FeeRecordHandler struct {
	feeSvc    service.FeeRecordService
	exportSvc service.ExportService
}

// NewFeeRecordHandler 创建 FeeRecordHandler
func NewFeeRecordHandler(feeSvc service.FeeRecordService, exportSvc service.ExportService) *FeeRecordHandler {
	return &FeeRecordHandler{feeSvc: feeSvc, exportSvc: exportSvc}
}

// ListFeeRecords 获取费用记录列表
// GET /api/fee-records/?status=&month=
func (h *FeeRecordHandler) ListFeeRecords(c *gin.Context) {
	var req dto.FeeRecordListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	records, err := h.feeSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, records)
}

// GetFeeRecord 获取费用记录详情
// GET /api/fee-records/:id/
func (h *FeeRecordHandler) GetFeeRecord(c *gin.Context) {
	rec, err := h.feeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleFeeRecordError(c, err)
		return
	}

	response.OK(c, rec)
}

// CreateFeeRecord 手工创建费用记录
// POST /api/fee-records/
func (h *FeeRecordHandler) CreateFeeRecord(c *gin.Context) {
	var req dto.CreateFeeRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rec, err := h.feeSvc.Create(c.Request.Context(), &req, OptionalUserID(c))
	if err != nil {
		h.handleFeeRecordError(c, err)
		return
	}

	response.Created(c, rec)
}

// ReplaceFeeRecord 整体替换费用记录
// PUT /api/fee-records/:id/
func (h *FeeRecordHandler) ReplaceFeeRecord(c *gin.Context) {
	var req dto.CreateFeeRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rec, err := h.feeSvc.Update(c.Request.Context(), c.Param("id"), req.AsUpdate(), OptionalUserID(c))
	if err != nil {
		h.handleFeeRecordError(c, err)
		return
	}

	response.OK(c, rec)
}

// UpdateFeeRecord 部分更新费用记录（如登记缴费）
// PATCH /api/fee-records/:id/
func (h *FeeRecordHandler) UpdateFeeRecord(c *gin.Context) {
	var req dto.UpdateFeeRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rec, err := h.feeSvc.Update(c.Request.Context(), c.Param("id"), &req, OptionalUserID(c))
	if err != nil {
		h.handleFeeRecordError(c, err)
		return
	}

	response.OK(c, rec)
}

// DeleteFeeRecord 删除费用记录
// DELETE /api/fee-records/:id/
func (h *FeeRecordHandler) DeleteFeeRecord(c *gin.Context) {
	if err := h.feeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleFeeRecordError(c, err)
		return
	}

	response.NoContent(c)
}

// ExportFeeRecords 导出费用记录为 Excel
// GET /api/fee-records/export/?month=&status=
func (h *FeeRecordHandler) ExportFeeRecords(c *gin.Context) {
	var req dto.FeeRecordListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	buf, filename, err := h.exportSvc.ExportFeeRecords(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportNoRecords):
			response.NotFound(c, "No fee records match the given filters.")
		default:
			response.InternalError(c)
		}
		return
	}

	// 设置下载响应头
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *FeeRecordHandler) handleFeeRecordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFeeRecordNotFound):
		response.NotFound(c, "Fee record not found.")
	case errors.Is(err, service.ErrFeeRecordDuplicate):
		response.BadRequest(c, response.CodeConflict, "A fee record for this student and month already exists.")
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, response.CodeValidation, "Invalid input.")
	default:
		response.InternalError(c)
	}
}
