package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-admin/internal/dto"
	"hostel-admin/internal/service"
	"hostel-admin/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 管理员登录
// POST /api/login/
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.BadRequest(c, response.CodeInvalidLogin, "Unable to log in with provided credentials.")
		case errors.Is(err, service.ErrAuthTablesMissing):
			response.ServiceUnavailable(c, response.CodeAuthTablesMissing,
				"Authentication tables are missing. Run database migrations first.")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout 登出，当前 Token 加入黑名单
// POST /api/logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, exp, ok := MustGetTokenInfo(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, response.MessageBody{Message: "Successfully logged out."})
}
