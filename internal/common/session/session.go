// Package session 提供服务端会话存储
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
)

// 会话类型
const (
	KindAdmin    = "admin"
	KindConsumer = "consumer"
)

// Session 登录会话
type Session struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Authenticated bool      `json:"authenticated"`
	Role          string    `json:"role,omitempty"`
	User          string    `json:"user,omitempty"`
	UserID        string    `json:"user_id,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Actor 操作人标识
func (s *Session) Actor() string {
	switch {
	case s.User != "":
		return s.User
	case s.Phone != "":
		return s.Phone
	default:
		return s.UserID
	}
}

// Store Redis 会话存储
type Store struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewStore 创建会话存储
func NewStore(rdb *redis.Client, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = "session:"
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{rdb: rdb, prefix: prefix, ttl: ttl, now: time.Now}
}

// TTL 会话有效期
func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

// Create 写入新会话，生成 ID 与过期时间
func (s *Store) Create(ctx context.Context, sess *Session) (*Session, error) {
	now := s.now()
	sess.ID = uuid.New().String()
	sess.CreatedAt = now
	sess.ExpiresAt = now.Add(s.ttl)

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(sess.ID), data, s.ttl).Err(); err != nil {
		return nil, apperrors.ErrCacheError.WithError(err)
	}
	return sess, nil
}

// Get 读取会话，不存在、未认证或已过期时返回 ErrSessionInvalid
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, apperrors.ErrSessionInvalid
	}

	data, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrSessionInvalid
	}
	if err != nil {
		return nil, apperrors.ErrCacheError.WithError(err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, apperrors.ErrSessionInvalid.WithError(err)
	}
	if !sess.Authenticated || !s.now().Before(sess.ExpiresAt) {
		return nil, apperrors.ErrSessionInvalid
	}
	return &sess, nil
}

// Delete 删除会话
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, s.key(id)).Err(); err != nil {
		return apperrors.ErrCacheError.WithError(err)
	}
	return nil
}

// Sweep 扫描全部会话，删除无法解析或已过期的条目，返回各类型的活跃数
func (s *Store) Sweep(ctx context.Context) (map[string]int64, int, error) {
	active := map[string]int64{KindAdmin: 0, KindConsumer: 0}
	removed := 0

	iter := s.rdb.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := s.rdb.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, removed, err
		}

		var sess Session
		if err := json.Unmarshal(data, &sess); err != nil || !s.now().Before(sess.ExpiresAt) {
			if err := s.rdb.Del(ctx, key).Err(); err != nil {
				return nil, removed, err
			}
			removed++
			continue
		}
		active[sess.Kind]++
	}
	if err := iter.Err(); err != nil {
		return nil, removed, err
	}
	return active, removed, nil
}

type contextKey struct{}

// NewContext 把会话写入 context
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext 读取 context 中的会话
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
