package middleware

import (
	"github.com/gin-gonic/gin"
)

// apiSecurityHeaders 纯 JSON / 文件下载接口的固定响应头
var apiSecurityHeaders = [][2]string{
	{"X-Frame-Options", "DENY"},
	{"X-Content-Type-Options", "nosniff"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	// 学生与缴费数据不允许被中间缓存
	{"Cache-Control", "no-store"},
}

// SecurityHeaders 安全响应头
// 经 TLS 或 HTTPS 反向代理访问时附加 HSTS
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range apiSecurityHeaders {
			c.Header(h[0], h[1])
		}
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			c.Header("Strict-Transport-Security", "max-age=31536000")
		}
		c.Next()
	}
}
