// Package config 配置管理单元测试
package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== Load 测试 ====================

func TestLoad_WithDefaultValues(t *testing.T) {
	// 不指定配置文件路径，使用默认搜索路径
	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "taskmall-admin", cfg.Server.Name)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestGet_ReturnsSameInstance(t *testing.T) {
	cfg1 := Get()
	cfg2 := Get()
	assert.Same(t, cfg1, cfg2)
}

func freshDefaults(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	require.NoError(t, v.Unmarshal(cfg))
	return cfg
}

// ==================== 默认值测试 ====================

func TestDefaults_DemoAdminCredential(t *testing.T) {
	cfg := freshDefaults(t)

	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "123456", cfg.Auth.AdminPassword)
	assert.Empty(t, cfg.Auth.AdminPasswordHash)
	assert.Equal(t, "verify_phone_password", cfg.Auth.VerifyRPC)
	assert.Equal(t, 10*time.Second, cfg.Auth.TimeoutDuration())
}

func TestDefaults_SessionAndQueryCache(t *testing.T) {
	cfg := freshDefaults(t)

	assert.Equal(t, 720*time.Minute, cfg.Session.TTLDuration())
	assert.Equal(t, "session:", cfg.Session.KeyPrefix)
	assert.True(t, cfg.QueryCache.Enabled)
	assert.Equal(t, 300*time.Second, cfg.QueryCache.TTLDuration())
}

func TestDefaults_Scheduler(t *testing.T) {
	cfg := freshDefaults(t)

	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "@every 5m", cfg.Scheduler.CollectionStats)
	assert.True(t, cfg.Export.WithBOM)
}

func TestDefaults_CORS(t *testing.T) {
	cfg := freshDefaults(t)

	assert.Contains(t, cfg.CORS.AllowedOrigins, "*")
	assert.Contains(t, cfg.CORS.AllowedHeaders, "X-Query-Key")
	assert.Contains(t, cfg.CORS.ExposedHeaders, "Content-Disposition")
	assert.Equal(t, 86400, cfg.CORS.MaxAge)
}

func TestDefaults_OSS(t *testing.T) {
	cfg := freshDefaults(t)

	assert.Equal(t, "local", cfg.OSS.Provider)
	assert.Equal(t, int64(5<<20), cfg.OSS.MaxSize)
	assert.Equal(t, "/static", cfg.OSS.LocalURLPrefix)
}

// ==================== DatabaseConfig 测试 ====================

func TestDatabaseConfig_DSN(t *testing.T) {
	config := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		User:     "admin",
		Password: "p@ssw0rd",
		Name:     "production",
		SSLMode:  "require",
		Timezone: "UTC",
	}
	want := "host=db.example.com port=5433 user=admin password=p@ssw0rd dbname=production sslmode=require TimeZone=UTC"
	assert.Equal(t, want, config.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	config := RedisConfig{Host: "redis.example.com", Port: 6380}
	assert.Equal(t, "redis.example.com:6380", config.Addr())
}

func TestJWTConfig_AccessTokenDuration(t *testing.T) {
	tests := []struct {
		name   string
		expire int
		want   time.Duration
	}{
		{"1 hour", 1, 1 * time.Hour},
		{"24 hours", 24, 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := JWTConfig{AccessTokenExpire: tt.expire}
			assert.Equal(t, tt.want, config.AccessTokenDuration())
		})
	}
}

func TestConfig_Mode(t *testing.T) {
	tests := []struct {
		mode    string
		debug   bool
		release bool
	}{
		{"debug", true, false},
		{"release", false, true},
		{"test", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run("mode="+tt.mode, func(t *testing.T) {
			config := &Config{Server: ServerConfig{Mode: tt.mode}}
			assert.Equal(t, tt.debug, config.IsDebug())
			assert.Equal(t, tt.release, config.IsRelease())
		})
	}
}
