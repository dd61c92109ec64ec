// Package middleware 提供 HTTP 中间件
package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/jwt"
	"github.com/dumeirei/taskmall-admin/internal/common/logger"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
)

// AuthConfig 认证配置
type AuthConfig struct {
	JWTManager *jwt.Manager
	Sessions   *session.Store
	Kind       string // 期望的会话类型
}

// 上下文键
const (
	ContextKeySession = "session"
	ContextKeyClaims  = "claims"
)

// Auth 认证中间件，每次请求都到服务端校验会话
func Auth(config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		claims, err := config.JWTManager.ParseToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, "登录已过期，请重新登录")
			} else {
				response.Unauthorized(c, "无效的令牌")
			}
			c.Abort()
			return
		}

		if config.Kind != "" && claims.Kind != config.Kind {
			response.Forbidden(c, "无权访问")
			c.Abort()
			return
		}

		sess, err := config.Sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrSessionInvalid) {
				response.Unauthorized(c, apperrors.ErrSessionInvalid.Message)
			} else {
				logger.Error("session lookup failed", logger.SessionID(claims.SessionID), logger.Err(err))
				response.InternalError(c, "服务器内部错误")
			}
			c.Abort()
			return
		}
		if sess.Kind != claims.Kind {
			response.Forbidden(c, "无权访问")
			c.Abort()
			return
		}

		c.Set(ContextKeySession, sess)
		c.Set(ContextKeyClaims, claims)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))

		c.Next()
	}
}

// AdminAuth 管理员认证中间件
func AdminAuth(jwtManager *jwt.Manager, sessions *session.Store) gin.HandlerFunc {
	return Auth(&AuthConfig{
		JWTManager: jwtManager,
		Sessions:   sessions,
		Kind:       session.KindAdmin,
	})
}

// ConsumerAuth 用户端认证中间件
func ConsumerAuth(jwtManager *jwt.Manager, sessions *session.Store) gin.HandlerFunc {
	return Auth(&AuthConfig{
		JWTManager: jwtManager,
		Sessions:   sessions,
		Kind:       session.KindConsumer,
	})
}

// extractToken 从请求中提取令牌
func extractToken(c *gin.Context) string {
	// 优先从 Authorization 头获取
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// 其次从查询参数获取，用于导出下载链接
	token := c.Query("token")
	if token != "" {
		return token
	}

	token, _ = c.Cookie("token")
	return token
}

// GetSession 从上下文获取会话
func GetSession(c *gin.Context) *session.Session {
	v, exists := c.Get(ContextKeySession)
	if !exists {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// GetClaims 从上下文获取完整的 Claims
func GetClaims(c *gin.Context) *jwt.Claims {
	claims, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	return claims.(*jwt.Claims)
}

// IsLoggedIn 判断是否已登录
func IsLoggedIn(c *gin.Context) bool {
	return GetSession(c) != nil
}
