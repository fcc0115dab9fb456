package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/service"
	"hostel-admin/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// ListStudents 获取学生列表
// GET /api/students/?status=&roomNumber=
func (h *StudentHandler) ListStudents(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	students, err := h.studentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, students)
}

// GetStudent 获取学生详情
// GET /api/students/:id/
func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.studentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// CreateStudent 登记学生
// POST /api/students/
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req, OptionalUserID(c))
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.Created(c, student)
}

// ReplaceStudent 整体替换学生信息
// PUT /api/students/:id/
func (h *StudentHandler) ReplaceStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), req.AsUpdate(), OptionalUserID(c))
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// UpdateStudent 部分更新学生信息
// PATCH /api/students/:id/
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), &req, OptionalUserID(c))
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// DeleteStudent 删除学生
// DELETE /api/students/:id/
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, "Student not found.")
	case errors.Is(err, service.ErrRollNumberTaken):
		response.ValidationError(c, "Invalid input.", map[string]string{
			"rollNumber": "student with this roll number already exists.",
		})
	case errors.Is(err, service.ErrEmailTaken):
		response.ValidationError(c, "Invalid input.", map[string]string{
			"email": "student with this email already exists.",
		})
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, response.CodeValidation, "Invalid input.")
	default:
		response.InternalError(c)
	}
}
