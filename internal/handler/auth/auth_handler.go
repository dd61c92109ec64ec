// Package auth 提供用户端认证相关的 HTTP Handler
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/taskmall-admin/internal/common/handler"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	authService "github.com/dumeirei/taskmall-admin/internal/service/auth"
)

// Handler 认证处理器
type Handler struct {
	authService *authService.AuthService
}

// NewHandler 创建认证处理器
func NewHandler(authSvc *authService.AuthService) *Handler {
	return &Handler{authService: authSvc}
}

// Login 手机号密码登录
// @Summary 手机号密码登录
// @Description 先由认证服务校验手机号与密码，再以返回的邮箱完成登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body authService.LoginRequest true "请求参数"
// @Success 200 {object} response.Response{data=authService.LoginResponse}
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req authService.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请输入手机号和密码")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}

// Logout 退出登录
// @Summary 退出登录
// @Tags 认证
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	sess, ok := handler.RequireSession(c)
	if !ok {
		return
	}

	err := h.authService.Logout(c.Request.Context(), sess)
	handler.MustSucceed(c, err, nil)
}

// Session 获取当前会话
// @Summary 获取当前会话
// @Tags 认证
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=session.Session}
// @Router /api/v1/auth/session [get]
func (h *Handler) Session(c *gin.Context) {
	sess, ok := handler.RequireSession(c)
	if !ok {
		return
	}
	response.Success(c, sess)
}
