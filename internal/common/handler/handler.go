// Package handler 提供 API Handler 的通用辅助函数
// 用于减少 Handler 层的代码重复，统一错误处理、会话检查、参数解析等操作
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/logger"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
	"github.com/dumeirei/taskmall-admin/internal/middleware"
)

// ============================================================================
// 统一错误处理
// ============================================================================

// HandleError 处理错误并发送适当的响应
// 如果 err 为 nil，返回 false（表示无错误需要处理）
// 如果 err 不为 nil，发送错误响应并返回 true（调用方应该 return）
//
// 使用示例:
//
//	result, err := service.DoSomething()
//	if HandleError(c, err) {
//	    return
//	}
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if !errors.IsAppError(err) {
		logger.Error("unhandled error",
			logger.RequestID(middleware.GetRequestID(c)),
			logger.Path(c.Request.URL.Path),
			logger.Err(err),
		)
		response.InternalError(c, "服务器内部错误")
		return true
	}

	appErr := errors.GetAppError(err)
	var data interface{}
	if len(appErr.Fields) > 0 {
		data = gin.H{"fields": appErr.Fields}
	}

	switch statusFor(appErr.Code) {
	case http.StatusUnauthorized:
		response.Unauthorized(c, appErr.Message)
	case http.StatusTooManyRequests:
		response.TooManyRequests(c, appErr.Message)
	default:
		response.ErrorWithData(c, appErr.Code, appErr.Message, data)
	}
	return true
}

// statusFor 会话类错误使用 401，其余业务错误保持 200 + 业务码
func statusFor(code int) int {
	switch code {
	case errors.ErrUnauthorized.Code, errors.ErrTokenExpired.Code, errors.ErrTokenInvalid.Code, errors.ErrSessionInvalid.Code:
		return http.StatusUnauthorized
	case errors.ErrRateLimitExceed.Code:
		return http.StatusTooManyRequests
	}
	return http.StatusOK
}

// MustSucceed 便捷封装：如果有错误则返回错误响应，否则返回成功响应
//
// 使用示例:
//
//	result, err := service.GetData()
//	MustSucceed(c, err, result)
//	return  // 注意：调用 MustSucceed 后必须 return
func MustSucceed(c *gin.Context, err error, data interface{}) {
	if HandleError(c, err) {
		return
	}
	response.Success(c, data)
}

// MustSucceedList 便捷封装：列表响应版本
func MustSucceedList(c *gin.Context, err error, list interface{}, total int64) {
	if HandleError(c, err) {
		return
	}
	response.SuccessList(c, list, total)
}

// ============================================================================
// 会话检查
// ============================================================================

// RequireSession 获取当前会话，未登录时返回 401 响应
//
// 使用示例:
//
//	sess, ok := handler.RequireSession(c)
//	if !ok {
//	    return
//	}
func RequireSession(c *gin.Context) (*session.Session, bool) {
	sess := middleware.GetSession(c)
	if sess == nil {
		response.Unauthorized(c, "请先登录")
		return nil, false
	}
	return sess, true
}

// ============================================================================
// 参数解析
// ============================================================================

// ParseID 解析路径参数 "id" 为 int64
// 返回 (0, false) 表示解析失败（已发送400响应，调用方应该 return）
func ParseID(c *gin.Context, resourceName string) (int64, bool) {
	return ParseParamID(c, "id", resourceName)
}

// ParseParamID 解析指定路径参数为 int64
func ParseParamID(c *gin.Context, paramName, resourceName string) (int64, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "无效的"+resourceName+"ID")
		return 0, false
	}
	return id, true
}

// QueryFilters 收集查询参数中除保留键外的过滤条件
func QueryFilters(c *gin.Context, reserved ...string) map[string]string {
	skip := map[string]struct{}{}
	for _, k := range reserved {
		skip[k] = struct{}{}
	}

	filters := map[string]string{}
	for k, vs := range c.Request.URL.Query() {
		if _, ok := skip[k]; ok || len(vs) == 0 {
			continue
		}
		filters[k] = strings.TrimSpace(vs[0])
	}
	return filters
}

// BindPagination 从查询参数绑定分页参数，默认 page=1, page_size=20，最大 100
func BindPagination(c *gin.Context) (offset, limit int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return (page - 1) * size, size
}
