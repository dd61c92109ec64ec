package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/taskmall-admin/internal/common/handler"
	oplog "github.com/dumeirei/taskmall-admin/internal/common/middleware"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	adminService "github.com/dumeirei/taskmall-admin/internal/service/admin"
)

// AuthHandler 管理员认证处理器
type AuthHandler struct {
	authService *adminService.AuthService
}

// NewAuthHandler 创建管理员认证处理器
func NewAuthHandler(authSvc *adminService.AuthService) *AuthHandler {
	return &AuthHandler{authService: authSvc}
}

// Login 管理员登录
// @Summary 管理员登录
// @Tags 管理员认证
// @Accept json
// @Produce json
// @Param request body adminService.LoginRequest true "请求参数"
// @Success 200 {object} response.Response{data=adminService.LoginResponse}
// @Router /api/admin/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req adminService.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}

// Logout 退出登录
// @Summary 管理员退出登录
// @Tags 管理员认证
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response
// @Router /api/admin/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := handler.RequireSession(c)
	if !ok {
		return
	}
	c.Set(oplog.ContextKeyCollection, "auth")
	c.Set(oplog.ContextKeyAction, "logout")

	err := h.authService.Logout(c.Request.Context(), sess)
	handler.MustSucceed(c, err, nil)
}

// Session 获取当前会话
// @Summary 获取当前管理员会话
// @Tags 管理员认证
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=session.Session}
// @Router /api/admin/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	sess, ok := handler.RequireSession(c)
	if !ok {
		return
	}
	response.Success(c, sess)
}
