//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dumeirei/taskmall-admin/internal/common/cache"
	"github.com/dumeirei/taskmall-admin/internal/models"
)

func startPostgres(t *testing.T, ctx context.Context) *gorm.DB {
	container, err := tcPostgres.Run(ctx, "postgres:15-alpine",
		tcPostgres.WithDatabase("test_taskmall"),
		tcPostgres.WithUsername("test_user"),
		tcPostgres.WithPassword("test_password"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func startRedis(t *testing.T, ctx context.Context) *redis.Client {
	container, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	return redis.NewClient(opts)
}

func TestStore_Postgres_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	db := startPostgres(t, ctx)
	store := NewStore[models.PaymentMerchant](db)

	merchant := &models.PaymentMerchant{
		MerchantName: "TopPay",
		MerchantNo:   "M001",
		Rate:         decimal.RequireFromString("0.0150"),
		MinAmount:    decimal.NewFromInt(100),
		MaxAmount:    decimal.NewFromInt(50000),
		IsActive:     true,
	}
	require.NoError(t, store.Create(ctx, merchant))

	items, err := store.FindAll(ctx, map[string]interface{}{"is_active": true}, "sort_weight DESC, id DESC")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "0.015", items[0].Rate.String())

	require.NoError(t, store.Delete(ctx, merchant.ID))
	assert.ErrorIs(t, store.Delete(ctx, merchant.ID), gorm.ErrRecordNotFound)
}

func TestQueryCache_Redis_Invalidate(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	rdb := startRedis(t, ctx)
	qc := cache.NewQueryCache(rdb, time.Minute)

	params := "search=vip"
	require.NoError(t, qc.Set(ctx, "user-levels", params, []string{"VIP1"}))

	var got []string
	hit, err := qc.Get(ctx, "user-levels", params, &got)
	require.NoError(t, err)
	assert.True(t, hit)

	require.NoError(t, qc.Invalidate(ctx, "user-levels"))
	hit, err = qc.Get(ctx, "user-levels", params, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
