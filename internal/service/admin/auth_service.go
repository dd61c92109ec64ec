package admin

import (
	"context"

	"github.com/dumeirei/taskmall-admin/internal/common/config"
	"github.com/dumeirei/taskmall-admin/internal/common/crypto"
	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/jwt"
	"github.com/dumeirei/taskmall-admin/internal/common/logger"
	"github.com/dumeirei/taskmall-admin/internal/common/metrics"
	"github.com/dumeirei/taskmall-admin/internal/common/notice"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
)

// RoleAdmin 后台会话角色
const RoleAdmin = "admin"

// AuthService 管理员认证服务，凭据为单一配置账号
type AuthService struct {
	cfg        *config.AuthConfig
	sessions   *session.Store
	jwtManager *jwt.Manager
	notifier   notice.Notifier
	metrics    *metrics.Metrics
}

// NewAuthService 创建管理员认证服务
func NewAuthService(cfg *config.AuthConfig, sessions *session.Store, jwtManager *jwt.Manager, notifier notice.Notifier, m *metrics.Metrics) *AuthService {
	if notifier == nil {
		notifier = notice.Nop
	}
	return &AuthService{
		cfg:        cfg,
		sessions:   sessions,
		jwtManager: jwtManager,
		notifier:   notifier,
		metrics:    m,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Session *session.Session `json:"session"`
	Token   *jwt.Token       `json:"token"`
}

// Login 管理员登录，失败时不区分用户名或密码错误
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if !s.verify(req.Username, req.Password) {
		s.metrics.RecordLogin(session.KindAdmin, apperrors.ErrLoginFailed)
		logger.Warn("admin login rejected",
			logger.Module("admin_auth"),
			logger.RequestID(logger.RequestIDFromContext(ctx)),
		)
		s.notifier.Notify(ctx, notice.Failure("登录失败", "用户名或密码错误"))
		return nil, apperrors.ErrLoginFailed
	}

	sess, err := s.sessions.Create(ctx, &session.Session{
		Kind:          session.KindAdmin,
		Authenticated: true,
		Role:          RoleAdmin,
		User:          req.Username,
	})
	if err != nil {
		s.metrics.RecordLogin(session.KindAdmin, err)
		return nil, err
	}

	token, err := s.jwtManager.Issue(sess.ID, jwt.KindAdmin, sess.ExpiresAt)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		s.metrics.RecordLogin(session.KindAdmin, err)
		return nil, apperrors.ErrInternalError.WithError(err)
	}

	s.metrics.RecordLogin(session.KindAdmin, nil)
	logger.Info("admin logged in",
		logger.Module("admin_auth"),
		logger.SessionID(sess.ID),
		logger.RequestID(logger.RequestIDFromContext(ctx)),
	)
	s.notifier.Notify(ctx, notice.Success("登录成功", "欢迎回来，"+sess.User))
	return &LoginResponse{Session: sess, Token: token}, nil
}

// verify 配置了密码哈希时使用 bcrypt 校验，否则比较明文
func (s *AuthService) verify(username, password string) bool {
	if !crypto.EqualString(username, s.cfg.AdminUsername) {
		return false
	}
	if s.cfg.AdminPasswordHash != "" {
		return crypto.VerifyPassword(password, s.cfg.AdminPasswordHash)
	}
	return s.cfg.AdminPassword != "" && crypto.EqualString(password, s.cfg.AdminPassword)
}

// Logout 注销会话
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notice.Success("已退出登录", ""))
	return nil
}
