package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	queryKeyPrefix  = "query:"
	queryVersionKey = "query:ver:"
	defaultQueryTTL = 5 * time.Minute
)

// QueryCache 按集合名分组的列表查询缓存
// 每个集合维护一个版本号，失效时递增版本号，旧版本的缓存条目自然过期
type QueryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewQueryCache 创建查询缓存，rdb 为 nil 时缓存关闭
func NewQueryCache(rdb *redis.Client, ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = defaultQueryTTL
	}
	return &QueryCache{rdb: rdb, ttl: ttl}
}

// Enabled 是否启用
func (q *QueryCache) Enabled() bool {
	return q != nil && q.rdb != nil
}

// Version 返回集合当前版本号，不存在时为 0
func (q *QueryCache) Version(ctx context.Context, collection string) (int64, error) {
	v, err := q.rdb.Get(ctx, queryVersionKey+collection).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Key 计算查询缓存键
func (q *QueryCache) Key(ctx context.Context, collection, params string) (string, error) {
	ver, err := q.Version(ctx, collection)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum([]byte(params))
	return fmt.Sprintf("%s%s:v%d:%s", queryKeyPrefix, collection, ver, hex.EncodeToString(sum[:8])), nil
}

// Get 读取缓存，命中时解码到 dest 并返回 true
func (q *QueryCache) Get(ctx context.Context, collection, params string, dest interface{}) (bool, error) {
	_, hit, err := q.Lookup(ctx, collection, params, dest)
	return hit, err
}

// Lookup 按当前版本解析缓存键并读取
// 未命中时返回的键用于 SetKey 回填，期间发生失效则回填落在旧版本上
func (q *QueryCache) Lookup(ctx context.Context, collection, params string, dest interface{}) (string, bool, error) {
	if !q.Enabled() {
		return "", false, nil
	}
	key, err := q.Key(ctx, collection, params)
	if err != nil {
		return "", false, err
	}
	data, err := q.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return key, false, nil
	}
	if err != nil {
		return key, false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return key, false, fmt.Errorf("decode cached query: %w", err)
	}
	return key, true, nil
}

// Set 按当前版本写入缓存
func (q *QueryCache) Set(ctx context.Context, collection, params string, value interface{}) error {
	if !q.Enabled() {
		return nil
	}
	key, err := q.Key(ctx, collection, params)
	if err != nil {
		return err
	}
	return q.SetKey(ctx, key, value)
}

// SetKey 写入 Lookup 解析出的缓存键
func (q *QueryCache) SetKey(ctx context.Context, key string, value interface{}) error {
	if !q.Enabled() || key == "" {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return q.rdb.Set(ctx, key, data, q.ttl).Err()
}

// Invalidate 使集合下所有查询缓存失效
func (q *QueryCache) Invalidate(ctx context.Context, collection string) error {
	if !q.Enabled() {
		return nil
	}
	return q.rdb.Incr(ctx, queryVersionKey+collection).Err()
}
