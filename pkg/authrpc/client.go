// Package authrpc 外部认证服务客户端
package authrpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config 客户端配置
type Config struct {
	BaseURL   string
	AnonKey   string
	VerifyRPC string
	Timeout   time.Duration
}

// Client 外部认证服务客户端，请求失败不重试
type Client struct {
	r         *resty.Client
	verifyRPC string
}

// VerifyResult 手机号密码校验结果
type VerifyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email"`
	UserID  string `json:"user_id"`
}

// User 外部服务用户
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SignInResult 密码登录结果
type SignInResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// apiError 外部服务错误响应
type apiError struct {
	Code             interface{} `json:"code"`
	Message          string      `json:"message"`
	Msg              string      `json:"msg"`
	Error            string      `json:"error"`
	ErrorDescription string      `json:"error_description"`
}

func (e *apiError) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// 预定义错误
var (
	ErrRejected = errors.New("auth service rejected the request")
	ErrNoEmail  = errors.New("verification succeeded without an email")
)

// New 创建客户端
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rpc := cfg.VerifyRPC
	if rpc == "" {
		rpc = "verify_phone_password"
	}

	r := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.AnonKey != "" {
		r.SetHeader("apikey", cfg.AnonKey)
		r.SetAuthToken(cfg.AnonKey)
	}

	return &Client{r: r, verifyRPC: rpc}
}

// VerifyPhonePassword 调用校验存储过程，返回 {success, message, email, user_id}
func (c *Client) VerifyPhonePassword(ctx context.Context, phone, password string) (*VerifyResult, error) {
	var result VerifyResult
	var apiErr apiError

	resp, err := c.r.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"phone_input":    phone,
			"password_input": password,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/rest/v1/rpc/" + c.verifyRPC)
	if err != nil {
		return nil, fmt.Errorf("verify rpc: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: verify rpc status %d %s", ErrRejected, resp.StatusCode(), apiErr.text())
	}
	return &result, nil
}

// SignInWithPassword 以邮箱密码建立外部会话
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*SignInResult, error) {
	var result SignInResult
	var apiErr apiError

	resp, err := c.r.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{
			"email":    email,
			"password": password,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/auth/v1/token")
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: sign in status %d %s", ErrRejected, resp.StatusCode(), apiErr.text())
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("%w: sign in returned no access token", ErrRejected)
	}
	return &result, nil
}
