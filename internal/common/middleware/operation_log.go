// Package middleware 提供跨模块复用的 HTTP 中间件
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/dumeirei/taskmall-admin/internal/common/logger"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
	"github.com/dumeirei/taskmall-admin/internal/models"
	"github.com/dumeirei/taskmall-admin/internal/repository"
)

// 处理函数可写入的上下文键，用于覆盖从路径推断的集合与操作
const (
	ContextKeyCollection = "oplog_collection"
	ContextKeyAction     = "oplog_action"
	ContextKeyTargetID   = "oplog_target_id"
)

var sensitiveFields = []string{
	"password", "old_password", "new_password", "confirm_password",
	"token", "access_token", "refresh_token",
	"secret", "api_key", "api_secret", "anon_key",
}

// OperationLogger 操作日志中间件
type OperationLogger struct {
	repo   *repository.OperationLogRepository
	prefix string
	wg     sync.WaitGroup
}

// NewOperationLogger 创建操作日志中间件，prefix 为后台路由前缀
func NewOperationLogger(repo *repository.OperationLogRepository, prefix string) *OperationLogger {
	return &OperationLogger{repo: repo, prefix: strings.TrimSuffix(prefix, "/")}
}

// Log 记录后台写操作，落库在后台协程中完成
func (l *OperationLogger) Log() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		var requestBody []byte
		if c.Request.Body != nil && !strings.HasPrefix(c.ContentType(), "multipart/") {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		entry := l.build(c, requestBody)
		if entry == nil {
			return
		}

		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			l.save(entry)
		}()
	}
}

// Wait 等待进行中的日志写入完成
func (l *OperationLogger) Wait() {
	l.wg.Wait()
}

func isWrite(method string) bool {
	return method == "POST" || method == "PUT" || method == "DELETE" || method == "PATCH"
}

// build 在请求协程内取出全部需要的值
func (l *OperationLogger) build(c *gin.Context, requestBody []byte) *models.OperationLog {
	sess := session.FromContext(c.Request.Context())
	if sess == nil {
		return nil
	}

	collection, action := l.infer(c)
	if v := c.GetString(ContextKeyCollection); v != "" {
		collection = v
	}
	if v := c.GetString(ContextKeyAction); v != "" {
		action = v
	}

	entry := &models.OperationLog{
		Actor:      sess.Actor(),
		SessionID:  sess.ID,
		Collection: collection,
		Action:     action,
		StatusCode: c.Writer.Status(),
		IP:         c.ClientIP(),
		UserAgent:  truncate(c.Request.UserAgent(), 255),
	}

	if v, ok := c.Get(ContextKeyTargetID); ok {
		if id, ok := v.(int64); ok {
			entry.TargetID = &id
		}
	} else if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil {
		entry.TargetID = &id
	}

	if len(requestBody) > 0 {
		var data interface{}
		if err := json.Unmarshal(requestBody, &data); err == nil {
			if filtered, err := json.Marshal(filterSensitiveData(data)); err == nil {
				entry.RequestBody = datatypes.JSON(filtered)
			}
		}
	}
	return entry
}

// infer 从路由推断集合与操作，例如 POST /api/admin/categories
func (l *OperationLogger) infer(c *gin.Context) (string, string) {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	rest := strings.Trim(strings.TrimPrefix(path, l.prefix), "/")

	collection := "unknown"
	if seg := strings.SplitN(rest, "/", 2)[0]; seg != "" && !strings.HasPrefix(seg, ":") {
		collection = seg
	}

	action := "unknown"
	switch c.Request.Method {
	case "POST":
		action = "create"
	case "PUT", "PATCH":
		action = "update"
	case "DELETE":
		action = "delete"
	}
	return collection, action
}

func (l *OperationLogger) save(entry *models.OperationLog) {
	if l.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.repo.Create(ctx, entry); err != nil {
		logger.Warn("operation log write failed",
			logger.Collection(entry.Collection),
			logger.Action(entry.Action),
			logger.Err(err),
		)
	}
}

// filterSensitiveData 过滤敏感数据
func filterSensitiveData(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitive(key) {
				result[key] = "***"
			} else {
				result[key] = filterSensitiveData(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = filterSensitiveData(item)
		}
		return result
	default:
		return data
	}
}

func isSensitive(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, sf := range sensitiveFields {
		if strings.Contains(lowerKey, sf) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
