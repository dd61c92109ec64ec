// Package admin 后台服务单元测试
package admin

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dumeirei/taskmall-admin/internal/common/cache"
	"github.com/dumeirei/taskmall-admin/internal/common/config"
	"github.com/dumeirei/taskmall-admin/internal/common/crypto"
	apperrors "github.com/dumeirei/taskmall-admin/internal/common/errors"
	"github.com/dumeirei/taskmall-admin/internal/common/jwt"
	"github.com/dumeirei/taskmall-admin/internal/common/notice"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
	"github.com/dumeirei/taskmall-admin/internal/models"
	"github.com/dumeirei/taskmall-admin/internal/repository"
	"github.com/dumeirei/taskmall-admin/internal/resource"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func setupResources(t *testing.T) (*gorm.DB, *resource.Registry) {
	db := setupTestDB(t)
	_, rdb := setupRedis(t)
	reg := NewResources(db, resource.Deps{
		Cache:  cache.NewQueryCache(rdb, time.Minute),
		Logger: zap.NewNop(),
	})
	return db, reg
}

func create(t *testing.T, reg *resource.Registry, collection string, raw map[string]interface{}) interface{} {
	t.Helper()
	res, err := reg.Lookup(collection)
	require.NoError(t, err)
	out, err := res.Create(context.Background(), raw)
	require.NoError(t, err)
	return out
}

// ==================== 集合登记 ====================

func TestNewResources_RegistersEveryCollection(t *testing.T) {
	_, reg := setupResources(t)

	assert.ElementsMatch(t, []string{
		CollectionCategories, CollectionCustomerService, CollectionEventActivities,
		CollectionUserLevels, CollectionLuckyWheels, CollectionPaymentMerchants,
		CollectionPayoutChannels, CollectionSystemSettings, CollectionDictionaryItems,
		CollectionPaymentRecords, CollectionRechargeRecords, CollectionWithdrawalRecords,
		CollectionDrawRecords,
	}, reg.Collections())

	for _, name := range []string{CollectionPaymentRecords, CollectionRechargeRecords, CollectionWithdrawalRecords, CollectionDrawRecords} {
		res, err := reg.Lookup(name)
		require.NoError(t, err)
		assert.True(t, res.Schema().ReadOnly, name)

		_, err = res.Create(context.Background(), map[string]interface{}{"username": "u"})
		assert.ErrorIs(t, err, apperrors.ErrReadOnlyResource, name)
	}
}

// ==================== 数值替代值 ====================

func TestFallbacks_PerField(t *testing.T) {
	_, reg := setupResources(t)

	t.Run("分类编号回落为0", func(t *testing.T) {
		out := create(t, reg, CollectionCategories, map[string]interface{}{
			"category_name":         "酒店",
			"classification_number": "abc",
		})
		c := out.(*models.Category)
		assert.Equal(t, 0, c.ClassificationNumber)
		assert.True(t, c.OpenState)
	})

	t.Run("活动排序权重回落为100", func(t *testing.T) {
		out := create(t, reg, CollectionEventActivities, map[string]interface{}{
			"title":       "新人活动",
			"sort_weight": "not-a-number",
		})
		assert.Equal(t, 100, out.(*models.EventActivity).SortWeight)
	})

	t.Run("升级价格回落为888", func(t *testing.T) {
		out := create(t, reg, CollectionUserLevels, map[string]interface{}{
			"name":          "VIP1",
			"upgrade_price": "888元",
		})
		level := out.(*models.UserLevel)
		assert.True(t, decimal.NewFromInt(888).Equal(level.UpgradePrice))
		assert.True(t, level.IsOpen)
	})

	t.Run("转盘次数回落为1且总次数可空", func(t *testing.T) {
		out := create(t, reg, CollectionLuckyWheels, map[string]interface{}{
			"name":        "周末转盘",
			"daily_limit": "many",
			"total_limit": "",
		})
		wheel := out.(*models.LuckyWheelActivity)
		assert.Equal(t, 1, wheel.DailyLimit)
		assert.Nil(t, wheel.TotalLimit)
	})

	t.Run("商户限额使用默认值", func(t *testing.T) {
		out := create(t, reg, CollectionPaymentMerchants, map[string]interface{}{
			"merchant_name": "TopPay",
			"merchant_no":   "M001",
			"max_amount":    "lots",
		})
		m := out.(*models.PaymentMerchant)
		assert.True(t, decimal.NewFromInt(100).Equal(m.MinAmount))
		assert.True(t, decimal.NewFromInt(50000).Equal(m.MaxAmount))
		assert.True(t, decimal.NewFromInt(1).Equal(m.ExchangeRate))
	})
}

func TestValidation_Rejected(t *testing.T) {
	db, reg := setupResources(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		collection string
		raw        map[string]interface{}
		field      string
	}{
		{"客服类型不在可选值", CollectionCustomerService, map[string]interface{}{"name": "客服", "type": "fax"}, "type"},
		{"客服链接不是URL", CollectionCustomerService, map[string]interface{}{"name": "客服", "link": "not a url"}, "link"},
		{"等级值为负", CollectionUserLevels, map[string]interface{}{"name": "VIP", "level": -1}, "level"},
		{"代收商户缺少商户号", CollectionPaymentMerchants, map[string]interface{}{"merchant_name": "TopPay"}, "merchant_no"},
		{"字典项缺少分类", CollectionDictionaryItems, map[string]interface{}{"item_key": "k"}, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := reg.Lookup(tt.collection)
			require.NoError(t, err)

			_, err = res.Create(ctx, tt.raw)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Contains(t, apperrors.GetAppError(err).Fields, tt.field)

			count, err := res.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}

	var n int64
	db.Model(&models.CustomerServiceChannel{}).Count(&n)
	assert.Zero(t, n)
}

func TestPayoutChannel_MerchantNoOptional(t *testing.T) {
	_, reg := setupResources(t)

	out := create(t, reg, CollectionPayoutChannels, map[string]interface{}{
		"channel_name": "USDT代付",
		"channel_code": "usdt",
	})
	assert.Equal(t, "usdt", out.(*models.PayoutChannel).ChannelCode)
}

// ==================== 场景：分类增删改 ====================

func TestCategoryScenario(t *testing.T) {
	_, reg := setupResources(t)
	ctx := context.Background()
	res, err := reg.Lookup(CollectionCategories)
	require.NoError(t, err)

	create(t, reg, CollectionCategories, map[string]interface{}{"category_name": "Books", "classification_number": 9})
	created := create(t, reg, CollectionCategories, map[string]interface{}{
		"category_name":         "Electronics",
		"classification_number": 5,
		"open_state":            true,
	}).(*models.Category)
	create(t, reg, CollectionCategories, map[string]interface{}{"category_name": "Apparel", "classification_number": 1})

	list, total, err := res.List(ctx, resource.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	names := []string{}
	for _, c := range list.([]models.Category) {
		names = append(names, c.CategoryName)
	}
	assert.Equal(t, []string{"Apparel", "Electronics", "Books"}, names)

	updated, err := res.Update(ctx, created.ID, map[string]interface{}{"open_state": false})
	require.NoError(t, err)
	assert.False(t, updated.(*models.Category).OpenState)
	assert.Equal(t, "关闭", openLabel(updated.(*models.Category).OpenState))

	require.NoError(t, res.Delete(ctx, created.ID))
	list, _, err = res.List(ctx, resource.ListQuery{})
	require.NoError(t, err)
	for _, c := range list.([]models.Category) {
		assert.NotEqual(t, created.ID, c.ID)
	}
	assert.Len(t, list.([]models.Category), 2)
}

func TestRecordCollections_FilterAndExport(t *testing.T) {
	db, reg := setupResources(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&[]models.RechargeRecord{
		{Username: "alice", OrderNo: "R1", Amount: decimal.NewFromInt(100), Status: models.StatusPending, Method: "usdt", TxHash: "0xabc"},
		{Username: "bob", OrderNo: "R2", Amount: decimal.NewFromInt(50), Status: models.StatusCompleted, Method: "usdt"},
	}).Error)

	res, err := reg.Lookup(CollectionRechargeRecords)
	require.NoError(t, err)

	list, _, err := res.List(ctx, resource.ListQuery{Filters: map[string]string{"status": models.StatusPending}})
	require.NoError(t, err)
	require.Len(t, list.([]models.RechargeRecord), 1)
	assert.Equal(t, "alice", list.([]models.RechargeRecord)[0].Username)

	list, _, err = res.List(ctx, resource.ListQuery{Search: "0XABC", Filters: map[string]string{"status": "all"}})
	require.NoError(t, err)
	assert.Len(t, list.([]models.RechargeRecord), 1)

	body, filename, err := res.Export(ctx, resource.ListQuery{})
	require.NoError(t, err)
	assert.Contains(t, filename, "recharge-records_")
	assert.Contains(t, string(body), "100.00")
	assert.Contains(t, string(body), "R2")
}

// ==================== 管理员登录 ====================

type noticeLog struct {
	items []notice.Notice
}

func (n *noticeLog) Notify(_ context.Context, v notice.Notice) {
	n.items = append(n.items, v)
}

func setupAuth(t *testing.T, cfg *config.AuthConfig) (*AuthService, *session.Store, *noticeLog) {
	_, rdb := setupRedis(t)
	sessions := session.NewStore(rdb, "session:", time.Hour)
	jwtManager := jwt.NewManager(&jwt.Config{Secret: "test-secret", ExpireTime: 24 * time.Hour, Issuer: "test"})
	notices := &noticeLog{}
	return NewAuthService(cfg, sessions, jwtManager, notices, nil), sessions, notices
}

func TestAuthService_DemoCredential(t *testing.T) {
	cfg := &config.AuthConfig{AdminUsername: "admin", AdminPassword: "123456"}
	svc, sessions, notices := setupAuth(t, cfg)
	ctx := context.Background()

	t.Run("正确凭据建立会话", func(t *testing.T) {
		resp, err := svc.Login(ctx, &LoginRequest{Username: "admin", Password: "123456"})
		require.NoError(t, err)
		require.NotNil(t, resp.Token)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.True(t, resp.Session.Authenticated)
		assert.Equal(t, RoleAdmin, resp.Session.Role)
		assert.Equal(t, "admin", resp.Session.User)

		stored, err := sessions.Get(ctx, resp.Session.ID)
		require.NoError(t, err)
		assert.Equal(t, "admin", stored.User)

		require.NoError(t, svc.Logout(ctx, stored))
		_, err = sessions.Get(ctx, resp.Session.ID)
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	})

	t.Run("任何其他组合返回同一错误", func(t *testing.T) {
		for _, req := range []LoginRequest{
			{Username: "admin", Password: "654321"},
			{Username: "root", Password: "123456"},
			{Username: "Admin", Password: "123456"},
		} {
			before := len(notices.items)
			resp, err := svc.Login(ctx, &req)
			assert.Nil(t, resp)
			assert.Equal(t, apperrors.ErrLoginFailed, err)
			require.Len(t, notices.items, before+1)
			assert.Equal(t, notice.VariantDestructive, notices.items[before].Variant)
		}
	})
}

func TestAuthService_HashedCredential(t *testing.T) {
	hash, err := crypto.HashPassword("s3cret!", 4)
	require.NoError(t, err)

	cfg := &config.AuthConfig{AdminUsername: "ops", AdminPassword: "123456", AdminPasswordHash: hash}
	svc, _, _ := setupAuth(t, cfg)

	_, err = svc.Login(context.Background(), &LoginRequest{Username: "ops", Password: "s3cret!"})
	require.NoError(t, err)

	// 配置哈希后明文密码不再生效
	_, err = svc.Login(context.Background(), &LoginRequest{Username: "ops", Password: "123456"})
	assert.ErrorIs(t, err, apperrors.ErrLoginFailed)
}

// ==================== 仪表盘与操作日志 ====================

func TestDashboardService_GetOverview(t *testing.T) {
	db, reg := setupResources(t)
	ctx := context.Background()

	create(t, reg, CollectionCategories, map[string]interface{}{"category_name": "A"})
	create(t, reg, CollectionCategories, map[string]interface{}{"category_name": "B"})
	create(t, reg, CollectionUserLevels, map[string]interface{}{"name": "VIP1"})

	oplogRepo := repository.NewOperationLogRepository(db)
	require.NoError(t, oplogRepo.Create(ctx, &models.OperationLog{
		Actor: "admin", Collection: CollectionCategories, Action: "create", StatusCode: 200, IP: "127.0.0.1",
	}))

	overview, err := NewDashboardService(reg, oplogRepo).GetOverview(ctx)
	require.NoError(t, err)
	assert.Len(t, overview.Collections, 13)
	assert.Len(t, overview.RecentOperations, 1)

	byName := map[string]CollectionStat{}
	for _, s := range overview.Collections {
		byName[s.Collection] = s
	}
	assert.Equal(t, int64(2), byName[CollectionCategories].Rows)
	assert.Equal(t, int64(1), byName[CollectionCategories].TodayOperations)
	assert.Equal(t, int64(1), byName[CollectionUserLevels].Rows)
	assert.Equal(t, "分类", byName[CollectionCategories].Title)
	assert.True(t, byName[CollectionDrawRecords].ReadOnly)
}

func TestOperationLogService_List(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOperationLogRepository(db)
	ctx := context.Background()

	for _, c := range []string{CollectionCategories, CollectionUserLevels, CollectionCategories} {
		require.NoError(t, repo.Create(ctx, &models.OperationLog{
			Actor: "admin", Collection: c, Action: "update", StatusCode: 200, IP: "127.0.0.1",
		}))
	}

	svc := NewOperationLogService(repo)
	today := time.Now().Format("2006-01-02")

	logs, total, err := svc.List(ctx, &OperationLogQuery{Collection: CollectionCategories, StartDate: today, EndDate: today}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, logs, 2)

	purged, err := svc.Purge(ctx, -time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}
