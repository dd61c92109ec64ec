// Package logger 日志模块单元测试
package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dumeirei/taskmall-admin/internal/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_ConsoleFormat(t *testing.T) {
	err := Init(&config.LoggerConfig{Level: "debug", Format: "console", Output: "stdout", Caller: true})
	require.NoError(t, err)
	assert.NotNil(t, GetLogger())
	assert.NotNil(t, GetSugar())
}

func TestInit_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	err := Init(&config.LoggerConfig{
		Level:      "info",
		Format:     "json",
		Output:     "file",
		FilePath:   logFile,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)

	Info("written to file", Collection("categories"))
	_ = Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), `"collection":"categories"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(in))
		})
	}
}

func TestReplace_ObserverReceivesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Replace(zap.NewNop()) })

	Warn("mutation failed",
		Collection("user-levels"),
		Action("update"),
		RecordID(7),
		RequestID("req-1"),
		SessionID("sess-1"),
		QueryKey("user-levels:abc"),
		Latency(15*time.Millisecond),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "mutation failed", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "user-levels", fields["collection"])
	assert.Equal(t, "update", fields["action"])
	assert.Equal(t, int64(7), fields["record_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "sess-1", fields["session_id"])
	assert.Equal(t, "user-levels:abc", fields["query_key"])
}

func TestHTTPFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Replace(zap.NewNop()) })

	With(Module("http")).Info("request", Method("GET"), Path("/api/admin/categories"), StatusCode(200), IP("127.0.0.1"))

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "http", fields["module"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/admin/categories", fields["path"])
	assert.Equal(t, int64(200), fields["status_code"])
	assert.Equal(t, "127.0.0.1", fields["ip"])
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
