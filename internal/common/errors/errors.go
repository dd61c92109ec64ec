// Package errors 定义业务错误码和错误处理
package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// AppError 应用错误
type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，使 errors.Is 可以匹配预定义错误
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New 创建新的应用错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithMessage 修改错误消息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Fields:  e.Fields,
		Err:     e.Err,
	}
}

// WithError 添加原始错误
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Fields:  e.Fields,
		Err:     err,
	}
}

// WithFields 附加字段级错误说明
func (e *AppError) WithFields(fields map[string]string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Fields:  maps.Clone(fields),
		Err:     e.Err,
	}
}

// 通用错误码 (1000-1999)
var (
	ErrUnknown         = New(1000, "未知错误")
	ErrInvalidParams   = New(1001, "参数错误")
	ErrNotFound        = New(1002, "资源不存在")
	ErrAlreadyExists   = New(1003, "资源已存在")
	ErrDatabaseError   = New(1004, "数据库错误")
	ErrCacheError      = New(1005, "缓存错误")
	ErrInternalError   = New(1006, "内部错误")
	ErrExternalService = New(1007, "外部服务错误")
	ErrRateLimitExceed = New(1008, "请求过于频繁")
	ErrOperationFailed = New(1009, "操作失败")
)

// 资源错误码 (1100-1199)
var (
	ErrValidationFailed  = New(1100, "表单校验失败")
	ErrFetchFailed       = New(1101, "数据加载失败")
	ErrMutationFailed    = New(1102, "保存失败")
	ErrRecordNotFound    = New(1103, "记录不存在")
	ErrReadOnlyResource  = New(1104, "该数据只读")
	ErrQuerySuperseded   = New(1105, "查询已被更新的请求取代")
	ErrUnknownCollection = New(1106, "未知的数据集合")
)

// 认证错误码 (2000-2999)
var (
	ErrUnauthorized   = New(2000, "未登录")
	ErrTokenExpired   = New(2001, "登录已过期")
	ErrTokenInvalid   = New(2002, "无效的令牌")
	ErrLoginFailed    = New(2100, "登录失败，请检查账号和密码")
	ErrSessionInvalid = New(2101, "会话无效或已过期")
)

// 支付错误码 (6000-6999)
var (
	ErrAmountOutOfRange = New(6100, "金额超出通道限额")
	ErrChannelNotFound  = New(6101, "充值通道不存在")
)

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetAppError 获取应用错误
func GetAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return ErrUnknown.WithError(err)
}
