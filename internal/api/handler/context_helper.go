package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin/pkg/response"
)

// OptionalUserID 提取 JWT 中间件注入的 user_id，未启用认证时返回空串
func OptionalUserID(c *gin.Context) string {
	v, exists := c.Get("user_id")
	if !exists {
		return ""
	}
	s, _ := v.(string)
	return s
}

// MustGetTokenInfo 从上下文中提取当前 Token 的 jti 与过期时间
// 未携带 Token 时写入 401 响应，调用方应在 ok=false 时直接 return
func MustGetTokenInfo(c *gin.Context) (string, time.Time, bool) {
	jti, _ := c.Get("token_jti")
	exp, _ := c.Get("token_exp")
	jtiStr, ok1 := jti.(string)
	expTime, ok2 := exp.(time.Time)
	if !ok1 || !ok2 || jtiStr == "" {
		response.Unauthorized(c, response.CodeUnauthorized, "Authentication credentials were not provided.")
		return "", time.Time{}, false
	}
	return jtiStr, expTime, true
}

// respondBindError 统一处理请求绑定失败
func respondBindError(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "Request body is too large.")
		return
	}
	if fields := validationFields(err); fields != nil {
		response.ValidationError(c, "Invalid input.", fields)
		return
	}
	response.BadRequest(c, response.CodeValidation, "Malformed request body.")
}
