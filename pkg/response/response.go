package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码（机器可读，前端据此分支处理）
const (
	CodeValidation        = "VALIDATION_FAILED"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "DUPLICATE"
	CodeUnauthorized      = "NOT_AUTHENTICATED"
	CodeInvalidLogin      = "INVALID_CREDENTIALS"
	CodeTooManyRequests   = "THROTTLED"
	CodeBodyTooLarge      = "BODY_TOO_LARGE"
	CodeAuthTablesMissing = "AUTHTOKEN_MIGRATIONS_PENDING"
	CodeInternal          = "SERVER_ERROR"
)

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Code   string            `json:"code"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageBody 仅包含提示信息的响应
type MessageBody struct {
	Message string `json:"message"`
}

// ── 成功响应：资源本身即响应体 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 删除成功
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code, detail string) {
	c.JSON(httpStatus, ErrorBody{Code: code, Detail: detail})
}

// ValidationError 400 带字段级详情的校验错误
func ValidationError(c *gin.Context, detail string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Code:   CodeValidation,
		Detail: detail,
		Fields: fields,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, code, detail string) {
	Error(c, http.StatusBadRequest, code, detail)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code, detail string) {
	Error(c, http.StatusUnauthorized, code, detail)
}

// NotFound 404
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, CodeNotFound, detail)
}

// ServiceUnavailable 503
func ServiceUnavailable(c *gin.Context, code, detail string) {
	Error(c, http.StatusServiceUnavailable, code, detail)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "A server error occurred.")
}
