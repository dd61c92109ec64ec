// Package auth 提供用户端认证服务
package auth

import (
	"context"

	"github.com/dumeirei/taskmall-admin/internal/common/crypto"
	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/jwt"
	"github.com/dumeirei/taskmall-admin/internal/common/logger"
	"github.com/dumeirei/taskmall-admin/internal/common/metrics"
	"github.com/dumeirei/taskmall-admin/internal/common/notice"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
	"github.com/dumeirei/taskmall-admin/internal/common/utils"
	"github.com/dumeirei/taskmall-admin/pkg/authrpc"
)

// PhoneAuthenticator 外部认证服务，两步调用顺序不可调换
type PhoneAuthenticator interface {
	VerifyPhonePassword(ctx context.Context, phone, password string) (*authrpc.VerifyResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*authrpc.SignInResult, error)
}

// AuthService 用户端认证服务
type AuthService struct {
	remote     PhoneAuthenticator
	sessions   *session.Store
	jwtManager *jwt.Manager
	notifier   notice.Notifier
	metrics    *metrics.Metrics
}

// NewAuthService 创建用户端认证服务
func NewAuthService(remote PhoneAuthenticator, sessions *session.Store, jwtManager *jwt.Manager, notifier notice.Notifier, m *metrics.Metrics) *AuthService {
	if notifier == nil {
		notifier = notice.Nop
	}
	return &AuthService{
		remote:     remote,
		sessions:   sessions,
		jwtManager: jwtManager,
		notifier:   notifier,
		metrics:    m,
	}
}

// LoginRequest 手机号登录请求
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Session *session.Session `json:"session"`
	Token   *jwt.Token       `json:"token"`
}

// Login 先校验手机号密码，再以返回的邮箱登录外部服务，最后建立本地会话
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	phone := utils.NormalizePhone(req.Phone)
	if !utils.ValidatePhone(phone) {
		return nil, s.fail(ctx, phone, "phone", apperrors.ErrInvalidParams)
	}

	verified, err := s.remote.VerifyPhonePassword(ctx, phone, req.Password)
	if err != nil {
		return nil, s.fail(ctx, phone, "verify", err)
	}
	if !verified.Success {
		return nil, s.fail(ctx, phone, "verify", apperrors.New(apperrors.ErrLoginFailed.Code, verified.Message))
	}
	if verified.Email == "" {
		return nil, s.fail(ctx, phone, "verify", authrpc.ErrNoEmail)
	}

	signedIn, err := s.remote.SignInWithPassword(ctx, verified.Email, req.Password)
	if err != nil {
		return nil, s.fail(ctx, phone, "sign_in", err)
	}

	userID := verified.UserID
	if userID == "" {
		userID = signedIn.User.ID
	}

	sess, err := s.sessions.Create(ctx, &session.Session{
		Kind:          session.KindConsumer,
		Authenticated: true,
		UserID:        userID,
		Phone:         phone,
		Email:         verified.Email,
	})
	if err != nil {
		s.metrics.RecordLogin(session.KindConsumer, err)
		return nil, err
	}

	token, err := s.jwtManager.Issue(sess.ID, jwt.KindConsumer, sess.ExpiresAt)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		s.metrics.RecordLogin(session.KindConsumer, err)
		return nil, apperrors.ErrInternalError.WithError(err)
	}

	s.metrics.RecordLogin(session.KindConsumer, nil)
	logger.Info("consumer logged in",
		logger.Module("consumer_auth"),
		logger.SessionID(sess.ID),
		logger.String("phone", crypto.MaskPhone(phone)),
	)
	s.notifier.Notify(ctx, notice.Success("登录成功", ""))
	return &LoginResponse{Session: sess, Token: token}, nil
}

// fail 记录具体原因，对外只返回统一的登录失败
func (s *AuthService) fail(ctx context.Context, phone, step string, cause error) error {
	s.metrics.RecordLogin(session.KindConsumer, cause)
	logger.Warn("consumer login rejected",
		logger.Module("consumer_auth"),
		logger.String("step", step),
		logger.String("phone", crypto.MaskPhone(phone)),
		logger.RequestID(logger.RequestIDFromContext(ctx)),
		logger.Err(cause),
	)
	s.notifier.Notify(ctx, notice.Failure("登录失败", "手机号或密码错误"))
	return apperrors.ErrLoginFailed
}

// Logout 注销会话
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	return s.sessions.Delete(ctx, sess.ID)
}
