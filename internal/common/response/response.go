// Package response 提供统一的 API 响应格式
package response

import (
	"fmt"
	"net/http"

	"github.com/dumeirei/taskmall-admin/internal/common/notice"
	"github.com/gin-gonic/gin"
)

// Response API 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    interface{}     `json:"data,omitempty"`
	Notices []notice.Notice `json:"notices,omitempty"`
}

// ListData 列表数据结构
type ListData struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
}

// notices 取出本次请求收集到的提示
func notices(c *gin.Context) []notice.Notice {
	if c.Request == nil {
		return nil
	}
	if col := notice.FromContext(c.Request.Context()); col != nil {
		return col.Drain()
	}
	return nil
}

func write(c *gin.Context, status, code int, message string, data interface{}) {
	c.JSON(status, Response{
		Code:    code,
		Message: message,
		Data:    data,
		Notices: notices(c),
	})
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, 0, "success", data)
}

// SuccessWithMessage 成功响应（带消息）
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusOK, 0, message, data)
}

// SuccessList 列表成功响应
func SuccessList(c *gin.Context, list interface{}, total int64) {
	write(c, http.StatusOK, 0, "success", ListData{List: list, Total: total})
}

// Attachment 文件下载响应
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	write(c, http.StatusOK, code, message, nil)
}

// ErrorWithData 错误响应（带数据）
func ErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	write(c, http.StatusOK, code, message, data)
}

// BadRequest 请求参数错误
func BadRequest(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, 400, message, nil)
}

// Unauthorized 未授权
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "unauthorized"
	}
	write(c, http.StatusUnauthorized, 401, message, nil)
}

// Forbidden 禁止访问
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "forbidden"
	}
	write(c, http.StatusForbidden, 403, message, nil)
}

// NotFound 资源不存在
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "not found"
	}
	write(c, http.StatusNotFound, 404, message, nil)
}

// InternalError 服务器内部错误
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	write(c, http.StatusInternalServerError, 500, message, nil)
}

// TooManyRequests 请求过于频繁
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}
	write(c, http.StatusTooManyRequests, 429, message, nil)
}
