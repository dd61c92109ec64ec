// Package repository 通用仓储单元测试
package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dumeirei/taskmall-admin/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(models.All()...)
	require.NoError(t, err)

	return db
}

func TestStore_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.UserLevel](db)
	ctx := context.Background()

	level := &models.UserLevel{
		Name:         "VIP1",
		Level:        1,
		UpgradePrice: decimal.NewFromInt(888),
		SortWeight:   0,
		IsOpen:       false,
	}
	require.NoError(t, store.Create(ctx, level))
	assert.NotZero(t, level.ID)

	found, err := store.GetByID(ctx, level.ID)
	require.NoError(t, err)
	assert.Equal(t, "VIP1", found.Name)
	assert.True(t, decimal.NewFromInt(888).Equal(found.UpgradePrice))
	assert.False(t, found.IsOpen)
	assert.Equal(t, 0, found.SortWeight)
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.Category](db)

	_, err := store.GetByID(context.Background(), 404)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestStore_FindAll_FiltersAndOrder(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.Category](db)
	ctx := context.Background()

	for i, name := range []string{"酒店", "民宿", "公寓"} {
		require.NoError(t, store.Create(ctx, &models.Category{
			CategoryName:         name,
			ClassificationNumber: i + 1,
			OpenState:            i != 1,
		}))
	}

	t.Run("无条件按编号倒序", func(t *testing.T) {
		items, err := store.FindAll(ctx, nil, "classification_number DESC")
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "公寓", items[0].CategoryName)
		assert.Equal(t, "酒店", items[2].CategoryName)
	})

	t.Run("等值过滤", func(t *testing.T) {
		items, err := store.FindAll(ctx, map[string]interface{}{"open_state": false}, "id")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "民宿", items[0].CategoryName)
	})
}

func TestStore_Save(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.EventActivity](db)
	ctx := context.Background()

	activity := &models.EventActivity{Title: "新年活动", SortWeight: 100, IsActive: true}
	require.NoError(t, store.Create(ctx, activity))

	activity.IsActive = false
	activity.SortWeight = 0
	require.NoError(t, store.Save(ctx, activity))

	found, err := store.GetByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
	assert.Equal(t, 0, found.SortWeight)
}

func TestStore_Delete(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore[models.DictionaryItem](db)
	ctx := context.Background()

	item := &models.DictionaryItem{Category: "lang", ItemKey: "zh", ItemValue: "中文"}
	require.NoError(t, store.Create(ctx, item))

	require.NoError(t, store.Delete(ctx, item.ID))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// 删除不存在的记录
	err = store.Delete(ctx, item.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestOperationLogRepository_ListAndStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOperationLogRepository(db)
	ctx := context.Background()

	target := int64(5)
	logs := []*models.OperationLog{
		{Actor: "admin", Collection: "categories", Action: "create", StatusCode: 200, IP: "127.0.0.1", RequestBody: datatypes.JSON(`{"category_name":"酒店"}`)},
		{Actor: "admin", Collection: "categories", Action: "update", TargetID: &target, StatusCode: 200, IP: "127.0.0.1"},
		{Actor: "ops", Collection: "user-levels", Action: "delete", TargetID: &target, StatusCode: 200, IP: "10.0.0.1"},
	}
	for _, l := range logs {
		require.NoError(t, repo.Create(ctx, l))
	}

	t.Run("按集合过滤", func(t *testing.T) {
		list, total, err := repo.List(ctx, &OperationLogFilter{Collection: "categories"}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, list, 2)
		assert.Equal(t, "update", list[0].Action)
	})

	t.Run("按操作人过滤", func(t *testing.T) {
		_, total, err := repo.List(ctx, &OperationLogFilter{Actor: "ops"}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("集合统计", func(t *testing.T) {
		stats, err := repo.GetCollectionStats(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats["categories"])
		assert.Equal(t, int64(1), stats["user-levels"])
	})

	t.Run("清理过期日志", func(t *testing.T) {
		n, err := repo.DeleteBefore(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}
