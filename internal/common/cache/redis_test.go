// Package cache Redis 缓存模块单元测试
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dumeirei/taskmall-admin/internal/common/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniRedis 创建 miniredis 测试实例
func setupMiniRedis(t *testing.T) *miniredis.Miniredis {
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func newClient(t *testing.T, s *miniredis.Miniredis) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// ==================== Init 函数测试 ====================

func TestInit_Success(t *testing.T) {
	s := setupMiniRedis(t)

	client, err := Init(&config.RedisConfig{
		Host:         s.Host(),
		Port:         s.Server().Addr().Port,
		PoolSize:     10,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	})
	require.NoError(t, err)
	assert.Same(t, client, GetClient())
	t.Cleanup(func() { _ = Close() })
}

func TestInit_ConnectionFailed(t *testing.T) {
	_, err := Init(&config.RedisConfig{Host: "127.0.0.1", Port: 1, DialTimeout: 1})
	assert.Error(t, err)
}

// ==================== QueryCache 测试 ====================

type row struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestQueryCache_SetGet(t *testing.T) {
	s := setupMiniRedis(t)
	q := NewQueryCache(newClient(t, s), time.Minute)
	ctx := context.Background()

	var got []row
	hit, err := q.Get(ctx, "categories", "search=", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, q.Set(ctx, "categories", "search=", []row{{ID: 1, Name: "Electronics"}}))

	hit, err = q.Get(ctx, "categories", "search=", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []row{{ID: 1, Name: "Electronics"}}, got)
}

func TestQueryCache_InvalidateOnlyTouchesOneCollection(t *testing.T) {
	s := setupMiniRedis(t)
	q := NewQueryCache(newClient(t, s), time.Minute)
	ctx := context.Background()

	require.NoError(t, q.Set(ctx, "categories", "p", []row{{ID: 1}}))
	require.NoError(t, q.Set(ctx, "user-levels", "p", []row{{ID: 2}}))

	require.NoError(t, q.Invalidate(ctx, "categories"))

	var got []row
	hit, err := q.Get(ctx, "categories", "p", &got)
	require.NoError(t, err)
	assert.False(t, hit, "invalidated collection must miss")

	hit, err = q.Get(ctx, "user-levels", "p", &got)
	require.NoError(t, err)
	assert.True(t, hit, "other collections keep their entries")

	ver, err := q.Version(ctx, "categories")
	require.NoError(t, err)
	assert.Equal(t, int64(1), ver)
}

func TestQueryCache_LookupPinsVersion(t *testing.T) {
	s := setupMiniRedis(t)
	q := NewQueryCache(newClient(t, s), time.Minute)
	ctx := context.Background()

	var got []row
	key, hit, err := q.Lookup(ctx, "categories", "p", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Contains(t, key, ":v0:")

	// 读库期间集合被修改，回填只写入旧版本
	require.NoError(t, q.Invalidate(ctx, "categories"))
	require.NoError(t, q.SetKey(ctx, key, []row{{ID: 1, Name: "stale"}}))

	hit, err = q.Get(ctx, "categories", "p", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestQueryCache_TTL(t *testing.T) {
	s := setupMiniRedis(t)
	q := NewQueryCache(newClient(t, s), 30*time.Second)
	ctx := context.Background()

	require.NoError(t, q.Set(ctx, "categories", "p", []row{}))
	key, err := q.Key(ctx, "categories", "p")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, s.TTL(key))

	s.FastForward(31 * time.Second)
	var got []row
	hit, err := q.Get(ctx, "categories", "p", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestQueryCache_Disabled(t *testing.T) {
	var nilCache *QueryCache
	q := NewQueryCache(nil, 0)
	ctx := context.Background()

	for _, c := range []*QueryCache{nilCache, q} {
		assert.False(t, c.Enabled())
		hit, err := c.Get(ctx, "categories", "p", &[]row{})
		assert.NoError(t, err)
		assert.False(t, hit)
		assert.NoError(t, c.Set(ctx, "categories", "p", []row{}))
		assert.NoError(t, c.SetKey(ctx, "", []row{}))
		assert.NoError(t, c.Invalidate(ctx, "categories"))
	}
}

func TestQueryCache_KeyDependsOnParams(t *testing.T) {
	s := setupMiniRedis(t)
	q := NewQueryCache(newClient(t, s), time.Minute)
	ctx := context.Background()

	k1, err := q.Key(ctx, "categories", "search=a")
	require.NoError(t, err)
	k2, err := q.Key(ctx, "categories", "search=b")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
	assert.Contains(t, k1, "query:categories:v0:")
}
