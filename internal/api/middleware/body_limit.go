package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-admin/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// 声明长度超限的请求直接拒绝；未声明长度的请求由 MaxBytesReader 截断，
// 读取超限时 Handler 绑定失败并返回 413
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "Request body is too large.")
			c.Abort()
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
