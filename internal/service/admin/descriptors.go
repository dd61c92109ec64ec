package admin

import (
	"github.com/dumeirei/taskmall-admin/internal/export"
	"github.com/dumeirei/taskmall-admin/internal/form"
	"github.com/dumeirei/taskmall-admin/internal/models"
	"github.com/dumeirei/taskmall-admin/internal/resource"
)

// 后台集合名，同时作为路由段
const (
	CollectionCategories        = "categories"
	CollectionCustomerService   = "customer-service"
	CollectionEventActivities   = "event-activities"
	CollectionUserLevels        = "user-levels"
	CollectionLuckyWheels       = "lucky-wheel-activities"
	CollectionPaymentMerchants  = "payment-merchants"
	CollectionPayoutChannels    = "payout-channels"
	CollectionSystemSettings    = "system-settings"
	CollectionDictionaryItems   = "dictionary-items"
	CollectionPaymentRecords    = "payment-records"
	CollectionRechargeRecords   = "recharge-records"
	CollectionWithdrawalRecords = "withdrawal-records"
	CollectionDrawRecords       = "draw-records"
)

func activeField() form.Field {
	return form.Field{Name: "is_active", Label: "启用", Type: form.TypeBool, Default: true}
}

// CategoryDescriptor 商品分类
func CategoryDescriptor() *resource.Descriptor[models.Category] {
	return &resource.Descriptor[models.Category]{
		Collection: CollectionCategories,
		Title:      "分类",
		Form: form.NewDescriptor(
			form.Field{Name: "category_name", Label: "分类名称", Type: form.TypeString, Required: true, Rules: "max=100"},
			form.Field{Name: "classification_number", Label: "分类编号", Type: form.TypeInt, Fallback: form.FallbackTo(0)},
			form.Field{Name: "open_state", Label: "开放状态", Type: form.TypeBool, Default: true},
		),
		SortKey:      "classification_number",
		SearchFields: func(c models.Category) []string { return []string{c.CategoryName} },
		FilterFields: []string{"open_state"},
		Columns: []export.Column[models.Category]{
			export.NumberColumn("ID", func(c models.Category) interface{} { return c.ID }),
			export.TextColumn("分类名称", func(c models.Category) interface{} { return c.CategoryName }),
			export.NumberColumn("分类编号", func(c models.Category) interface{} { return c.ClassificationNumber }),
			export.TextColumn("状态", func(c models.Category) interface{} { return openLabel(c.OpenState) }),
			export.TextColumn("创建时间", func(c models.Category) interface{} { return c.CreatedAt }),
		},
	}
}

// CustomerServiceDescriptor 客服渠道
func CustomerServiceDescriptor() *resource.Descriptor[models.CustomerServiceChannel] {
	return &resource.Descriptor[models.CustomerServiceChannel]{
		Collection: CollectionCustomerService,
		Title:      "客服渠道",
		Form: form.NewDescriptor(
			form.Field{Name: "name", Label: "名称", Type: form.TypeString, Required: true, Rules: "max=100"},
			form.Field{
				Name: "type", Label: "类型", Type: form.TypeEnum, Required: true, Default: models.ServiceTypePhone,
				Options: []string{
					models.ServiceTypePhone, models.ServiceTypeTelegram, models.ServiceTypeChat,
					models.ServiceTypeEmail, models.ServiceTypeWhatsApp,
				},
			},
			form.Field{Name: "contact", Label: "联系方式", Type: form.TypeString, Rules: "max=255"},
			form.Field{Name: "link", Label: "链接", Type: form.TypeURL},
			form.Field{Name: "working_hours", Label: "工作时间", Type: form.TypeString, Rules: "max=100"},
			form.Field{Name: "sort_order", Label: "排序", Type: form.TypeInt, Fallback: form.FallbackTo(0)},
			activeField(),
		),
		SortKey: "sort_order",
		SearchFields: func(c models.CustomerServiceChannel) []string {
			return []string{c.Name, c.Contact}
		},
		FilterFields: []string{"type", "is_active"},
		Columns: []export.Column[models.CustomerServiceChannel]{
			export.NumberColumn("ID", func(c models.CustomerServiceChannel) interface{} { return c.ID }),
			export.TextColumn("名称", func(c models.CustomerServiceChannel) interface{} { return c.Name }),
			export.TextColumn("类型", func(c models.CustomerServiceChannel) interface{} { return c.Type }),
			export.TextColumn("联系方式", func(c models.CustomerServiceChannel) interface{} { return c.Contact }),
			export.TextColumn("链接", func(c models.CustomerServiceChannel) interface{} { return c.Link }),
			export.TextColumn("工作时间", func(c models.CustomerServiceChannel) interface{} { return c.WorkingHours }),
			export.TextColumn("状态", func(c models.CustomerServiceChannel) interface{} { return activeLabel(c.IsActive) }),
		},
	}
}

// EventActivityDescriptor 活动公告
func EventActivityDescriptor() *resource.Descriptor[models.EventActivity] {
	return &resource.Descriptor[models.EventActivity]{
		Collection: CollectionEventActivities,
		Title:      "活动",
		Form: form.NewDescriptor(
			form.Field{Name: "serial_number", Label: "编号", Type: form.TypeString, Rules: "max=50"},
			form.Field{Name: "title", Label: "标题", Type: form.TypeString, Required: true, Rules: "max=200"},
			form.Field{Name: "content", Label: "内容", Type: form.TypeText},
			form.Field{Name: "image_url", Label: "图片", Type: form.TypeURL},
			form.Field{Name: "link_url", Label: "跳转链接", Type: form.TypeURL},
			form.Field{Name: "sort_weight", Label: "排序权重", Type: form.TypeInt, Default: 100, Fallback: form.FallbackTo(100)},
			activeField(),
		),
		SortKey:  "sort_weight",
		SortDesc: true,
		SearchFields: func(e models.EventActivity) []string {
			return []string{e.Title, e.SerialNumber}
		},
		FilterFields: []string{"is_active"},
		Columns: []export.Column[models.EventActivity]{
			export.NumberColumn("ID", func(e models.EventActivity) interface{} { return e.ID }),
			export.TextColumn("编号", func(e models.EventActivity) interface{} { return e.SerialNumber }),
			export.TextColumn("标题", func(e models.EventActivity) interface{} { return e.Title }),
			export.TextColumn("图片", func(e models.EventActivity) interface{} { return e.ImageURL }),
			export.TextColumn("跳转链接", func(e models.EventActivity) interface{} { return e.LinkURL }),
			export.NumberColumn("排序权重", func(e models.EventActivity) interface{} { return e.SortWeight }),
			export.TextColumn("状态", func(e models.EventActivity) interface{} { return activeLabel(e.IsActive) }),
			export.TextColumn("创建时间", func(e models.EventActivity) interface{} { return e.CreatedAt }),
		},
	}
}

// UserLevelDescriptor 用户等级
func UserLevelDescriptor() *resource.Descriptor[models.UserLevel] {
	return &resource.Descriptor[models.UserLevel]{
		Collection: CollectionUserLevels,
		Title:      "等级",
		Form: form.NewDescriptor(
			form.Field{Name: "serial_number", Label: "编号", Type: form.TypeString, Rules: "max=50"},
			form.Field{Name: "icon_url", Label: "图标", Type: form.TypeURL},
			form.Field{Name: "name", Label: "等级名称", Type: form.TypeString, Required: true, Rules: "max=100"},
			form.Field{Name: "level", Label: "等级值", Type: form.TypeInt, Fallback: form.FallbackTo(0), Rules: "min=0"},
			form.Field{Name: "withdrawal_limit", Label: "提现限制", Type: form.TypeText},
			form.Field{Name: "order_grab_limit", Label: "抢单限制", Type: form.TypeText},
			form.Field{Name: "upgrade_price", Label: "升级价格", Type: form.TypeDecimal, Default: 888, Fallback: form.FallbackTo(888), Rules: "min=0"},
			form.Field{Name: "sort_weight", Label: "排序权重", Type: form.TypeInt, Fallback: form.FallbackTo(0)},
			form.Field{Name: "is_displayed", Label: "前台展示", Type: form.TypeBool, Default: true},
			form.Field{Name: "is_open", Label: "开放升级", Type: form.TypeBool, Default: true},
		),
		SortKey: "level",
		SearchFields: func(u models.UserLevel) []string {
			return []string{u.Name, u.SerialNumber}
		},
		FilterFields: []string{"is_open", "is_displayed"},
		Columns: []export.Column[models.UserLevel]{
			export.NumberColumn("ID", func(u models.UserLevel) interface{} { return u.ID }),
			export.TextColumn("编号", func(u models.UserLevel) interface{} { return u.SerialNumber }),
			export.TextColumn("等级名称", func(u models.UserLevel) interface{} { return u.Name }),
			export.NumberColumn("等级值", func(u models.UserLevel) interface{} { return u.Level }),
			export.TextColumn("提现限制", func(u models.UserLevel) interface{} { return u.WithdrawalLimit }),
			export.TextColumn("抢单限制", func(u models.UserLevel) interface{} { return u.OrderGrabLimit }),
			export.NumberColumn("升级价格", func(u models.UserLevel) interface{} { return u.UpgradePrice }),
			export.TextColumn("状态", func(u models.UserLevel) interface{} { return openLabel(u.IsOpen) }),
		},
	}
}

// LuckyWheelDescriptor 幸运转盘活动
func LuckyWheelDescriptor() *resource.Descriptor[models.LuckyWheelActivity] {
	return &resource.Descriptor[models.LuckyWheelActivity]{
		Collection: CollectionLuckyWheels,
		Title:      "转盘活动",
		Form: form.NewDescriptor(
			form.Field{Name: "name", Label: "活动名称", Type: form.TypeString, Required: true, Rules: "max=100"},
			form.Field{Name: "details", Label: "活动详情", Type: form.TypeText},
			form.Field{Name: "daily_limit", Label: "每日次数", Type: form.TypeInt, Default: 1, Fallback: form.FallbackTo(1), Rules: "min=0"},
			form.Field{Name: "total_limit", Label: "总次数", Type: form.TypeInt, Nullable: true, Rules: "min=0"},
			form.Field{Name: "free_draw_daily", Label: "每日免费", Type: form.TypeBool},
			activeField(),
		),
		SortKey:      "created_at",
		SortDesc:     true,
		SearchFields: func(l models.LuckyWheelActivity) []string { return []string{l.Name, l.Details} },
		FilterFields: []string{"is_active", "free_draw_daily"},
		Columns: []export.Column[models.LuckyWheelActivity]{
			export.NumberColumn("ID", func(l models.LuckyWheelActivity) interface{} { return l.ID }),
			export.TextColumn("活动名称", func(l models.LuckyWheelActivity) interface{} { return l.Name }),
			export.NumberColumn("每日次数", func(l models.LuckyWheelActivity) interface{} { return l.DailyLimit }),
			export.NumberColumn("总次数", func(l models.LuckyWheelActivity) interface{} { return l.TotalLimit }),
			export.TextColumn("状态", func(l models.LuckyWheelActivity) interface{} { return activeLabel(l.IsActive) }),
			export.TextColumn("创建时间", func(l models.LuckyWheelActivity) interface{} { return l.CreatedAt }),
		},
	}
}

// channelFields 代收商户与代付通道共用的费率与限额字段
func channelFields() []form.Field {
	return []form.Field{
		{Name: "merchant_no", Label: "商户号", Type: form.TypeString, Required: true, Rules: "max=100"},
		{Name: "account_no", Label: "账户", Type: form.TypeString, Rules: "max=100"},
		{Name: "api_url", Label: "接口地址", Type: form.TypeURL},
		{Name: "backend_url", Label: "后台地址", Type: form.TypeURL},
		{Name: "rate", Label: "费率", Type: form.TypeDecimal, Fallback: form.FallbackTo(0), Rules: "min=0"},
		{Name: "exchange_rate", Label: "汇率", Type: form.TypeDecimal, Default: 1, Fallback: form.FallbackTo(1), Rules: "min=0"},
		{Name: "min_amount", Label: "最小金额", Type: form.TypeDecimal, Default: 100, Fallback: form.FallbackTo(100), Rules: "min=0"},
		{Name: "max_amount", Label: "最大金额", Type: form.TypeDecimal, Default: 50000, Fallback: form.FallbackTo(50000), Rules: "min=0"},
		{Name: "sort_weight", Label: "排序权重", Type: form.TypeInt, Fallback: form.FallbackTo(0)},
		activeField(),
	}
}

// PaymentMerchantDescriptor 代收商户
func PaymentMerchantDescriptor() *resource.Descriptor[models.PaymentMerchant] {
	fields := append([]form.Field{
		{Name: "merchant_name", Label: "商户名称", Type: form.TypeString, Required: true, Rules: "max=100"},
	}, channelFields()...)

	return &resource.Descriptor[models.PaymentMerchant]{
		Collection: CollectionPaymentMerchants,
		Title:      "代收商户",
		Form:       form.NewDescriptor(fields...),
		SortKey:    "sort_weight",
		SearchFields: func(p models.PaymentMerchant) []string {
			return []string{p.MerchantName, p.MerchantNo}
		},
		FilterFields: []string{"is_active"},
		Columns: []export.Column[models.PaymentMerchant]{
			export.NumberColumn("ID", func(p models.PaymentMerchant) interface{} { return p.ID }),
			export.TextColumn("商户名称", func(p models.PaymentMerchant) interface{} { return p.MerchantName }),
			export.TextColumn("商户号", func(p models.PaymentMerchant) interface{} { return p.MerchantNo }),
			export.TextColumn("账户", func(p models.PaymentMerchant) interface{} { return p.AccountNo }),
			export.NumberColumn("费率", func(p models.PaymentMerchant) interface{} { return p.Rate }),
			export.NumberColumn("汇率", func(p models.PaymentMerchant) interface{} { return p.ExchangeRate }),
			export.NumberColumn("最小金额", func(p models.PaymentMerchant) interface{} { return p.MinAmount }),
			export.NumberColumn("最大金额", func(p models.PaymentMerchant) interface{} { return p.MaxAmount }),
			export.TextColumn("状态", func(p models.PaymentMerchant) interface{} { return activeLabel(p.IsActive) }),
		},
	}
}

// PayoutChannelDescriptor 代付通道
func PayoutChannelDescriptor() *resource.Descriptor[models.PayoutChannel] {
	fields := append([]form.Field{
		{Name: "channel_name", Label: "通道名称", Type: form.TypeString, Required: true, Rules: "max=100"},
		{Name: "channel_code", Label: "通道编码", Type: form.TypeString, Required: true, Rules: "max=50"},
	}, channelFields()...)
	// 代付通道的商户号可为空
	fields[2].Required = false

	return &resource.Descriptor[models.PayoutChannel]{
		Collection: CollectionPayoutChannels,
		Title:      "代付通道",
		Form:       form.NewDescriptor(fields...),
		SortKey:    "sort_weight",
		SearchFields: func(p models.PayoutChannel) []string {
			return []string{p.ChannelName, p.ChannelCode, p.MerchantNo}
		},
		FilterFields: []string{"is_active", "channel_code"},
		Columns: []export.Column[models.PayoutChannel]{
			export.NumberColumn("ID", func(p models.PayoutChannel) interface{} { return p.ID }),
			export.TextColumn("通道名称", func(p models.PayoutChannel) interface{} { return p.ChannelName }),
			export.TextColumn("通道编码", func(p models.PayoutChannel) interface{} { return p.ChannelCode }),
			export.TextColumn("商户号", func(p models.PayoutChannel) interface{} { return p.MerchantNo }),
			export.NumberColumn("费率", func(p models.PayoutChannel) interface{} { return p.Rate }),
			export.NumberColumn("最小金额", func(p models.PayoutChannel) interface{} { return p.MinAmount }),
			export.NumberColumn("最大金额", func(p models.PayoutChannel) interface{} { return p.MaxAmount }),
			export.TextColumn("状态", func(p models.PayoutChannel) interface{} { return activeLabel(p.IsActive) }),
		},
	}
}

// SystemSettingDescriptor 系统设置
func SystemSettingDescriptor() *resource.Descriptor[models.SystemSetting] {
	return &resource.Descriptor[models.SystemSetting]{
		Collection: CollectionSystemSettings,
		Title:      "系统设置",
		Form: form.NewDescriptor(
			form.Field{Name: "setting_key", Label: "键", Type: form.TypeString, Required: true, Rules: "max=100"},
			form.Field{Name: "setting_value", Label: "值", Type: form.TypeText},
			form.Field{
				Name: "value_type", Label: "值类型", Type: form.TypeEnum, Required: true, Default: models.SettingTypeString,
				Options: []string{models.SettingTypeString, models.SettingTypeNumber, models.SettingTypeBoolean, models.SettingTypeJSON},
			},
			form.Field{Name: "category", Label: "分类", Type: form.TypeString, Required: true, Default: "general", Rules: "max=50"},
			form.Field{Name: "display_name", Label: "显示名称", Type: form.TypeString, Rules: "max=100"},
			form.Field{Name: "description", Label: "说明", Type: form.TypeString, Rules: "max=500"},
			form.Field{Name: "sort_order", Label: "排序", Type: form.TypeInt, Fallback: form.FallbackTo(0)},
			activeField(),
		),
		SortKey: "sort_order",
		SearchFields: func(s models.SystemSetting) []string {
			return []string{s.SettingKey, s.DisplayName, s.Description}
		},
		FilterFields: []string{"category", "value_type", "is_active"},
		Columns: []export.Column[models.SystemSetting]{
			export.NumberColumn("ID", func(s models.SystemSetting) interface{} { return s.ID }),
			export.TextColumn("分类", func(s models.SystemSetting) interface{} { return s.Category }),
			export.TextColumn("键", func(s models.SystemSetting) interface{} { return s.SettingKey }),
			export.TextColumn("值", func(s models.SystemSetting) interface{} { return s.SettingValue }),
			export.TextColumn("值类型", func(s models.SystemSetting) interface{} { return s.ValueType }),
			export.TextColumn("显示名称", func(s models.SystemSetting) interface{} { return s.DisplayName }),
			export.TextColumn("状态", func(s models.SystemSetting) interface{} { return activeLabel(s.IsActive) }),
		},
	}
}

// DictionaryItemDescriptor 字典项
func DictionaryItemDescriptor() *resource.Descriptor[models.DictionaryItem] {
	return &resource.Descriptor[models.DictionaryItem]{
		Collection: CollectionDictionaryItems,
		Title:      "字典项",
		Form: form.NewDescriptor(
			form.Field{Name: "category", Label: "分类", Type: form.TypeString, Required: true, Rules: "max=50"},
			form.Field{Name: "item_key", Label: "键", Type: form.TypeString, Required: true, Rules: "max=100"},
			form.Field{Name: "item_value", Label: "值", Type: form.TypeString, Rules: "max=500"},
			form.Field{Name: "sort_order", Label: "排序", Type: form.TypeInt, Fallback: form.FallbackTo(0)},
			activeField(),
		),
		SortKey:      "sort_order",
		SearchFields: func(d models.DictionaryItem) []string { return []string{d.ItemKey, d.ItemValue} },
		FilterFields: []string{"category", "is_active"},
		Columns: []export.Column[models.DictionaryItem]{
			export.NumberColumn("ID", func(d models.DictionaryItem) interface{} { return d.ID }),
			export.TextColumn("分类", func(d models.DictionaryItem) interface{} { return d.Category }),
			export.TextColumn("键", func(d models.DictionaryItem) interface{} { return d.ItemKey }),
			export.TextColumn("值", func(d models.DictionaryItem) interface{} { return d.ItemValue }),
			export.NumberColumn("排序", func(d models.DictionaryItem) interface{} { return d.SortOrder }),
		},
	}
}

// ==================== 只追加流水 ====================

// PaymentRecordDescriptor 支付流水
func PaymentRecordDescriptor() *resource.Descriptor[models.PaymentRecord] {
	return &resource.Descriptor[models.PaymentRecord]{
		Collection:   CollectionPaymentRecords,
		Title:        "支付记录",
		ReadOnly:     true,
		SortKey:      "created_at",
		SortDesc:     true,
		SearchFields: func(p models.PaymentRecord) []string { return []string{p.Username, p.OrderNo} },
		FilterFields: []string{"status", "method"},
		Columns: []export.Column[models.PaymentRecord]{
			export.NumberColumn("ID", func(p models.PaymentRecord) interface{} { return p.ID }),
			export.TextColumn("用户名", func(p models.PaymentRecord) interface{} { return p.Username }),
			export.TextColumn("订单号", func(p models.PaymentRecord) interface{} { return p.OrderNo }),
			export.NumberColumn("金额", func(p models.PaymentRecord) interface{} { return p.Amount }),
			export.TextColumn("状态", func(p models.PaymentRecord) interface{} { return p.Status }),
			export.TextColumn("方式", func(p models.PaymentRecord) interface{} { return p.Method }),
			export.TextColumn("创建时间", func(p models.PaymentRecord) interface{} { return p.CreatedAt }),
		},
	}
}

// RechargeRecordDescriptor 充值记录
func RechargeRecordDescriptor() *resource.Descriptor[models.RechargeRecord] {
	return &resource.Descriptor[models.RechargeRecord]{
		Collection: CollectionRechargeRecords,
		Title:      "充值记录",
		ReadOnly:   true,
		SortKey:    "created_at",
		SortDesc:   true,
		SearchFields: func(r models.RechargeRecord) []string {
			return []string{r.Username, r.OrderNo, r.TxHash}
		},
		FilterFields: []string{"status", "method", "network"},
		Columns: []export.Column[models.RechargeRecord]{
			export.NumberColumn("ID", func(r models.RechargeRecord) interface{} { return r.ID }),
			export.TextColumn("用户名", func(r models.RechargeRecord) interface{} { return r.Username }),
			export.TextColumn("订单号", func(r models.RechargeRecord) interface{} { return r.OrderNo }),
			export.NumberColumn("金额", func(r models.RechargeRecord) interface{} { return r.Amount }),
			export.TextColumn("状态", func(r models.RechargeRecord) interface{} { return r.Status }),
			export.TextColumn("方式", func(r models.RechargeRecord) interface{} { return r.Method }),
			export.TextColumn("网络", func(r models.RechargeRecord) interface{} { return r.Network }),
			export.TextColumn("交易哈希", func(r models.RechargeRecord) interface{} { return r.TxHash }),
			export.TextColumn("创建时间", func(r models.RechargeRecord) interface{} { return r.CreatedAt }),
		},
	}
}

// WithdrawalRecordDescriptor 提现记录
func WithdrawalRecordDescriptor() *resource.Descriptor[models.WithdrawalRecord] {
	return &resource.Descriptor[models.WithdrawalRecord]{
		Collection:   CollectionWithdrawalRecords,
		Title:        "提现记录",
		ReadOnly:     true,
		SortKey:      "created_at",
		SortDesc:     true,
		SearchFields: func(w models.WithdrawalRecord) []string { return []string{w.Username, w.OrderNo, w.Account} },
		FilterFields: []string{"status", "method"},
		Columns: []export.Column[models.WithdrawalRecord]{
			export.NumberColumn("ID", func(w models.WithdrawalRecord) interface{} { return w.ID }),
			export.TextColumn("用户名", func(w models.WithdrawalRecord) interface{} { return w.Username }),
			export.TextColumn("订单号", func(w models.WithdrawalRecord) interface{} { return w.OrderNo }),
			export.NumberColumn("金额", func(w models.WithdrawalRecord) interface{} { return w.Amount }),
			export.TextColumn("状态", func(w models.WithdrawalRecord) interface{} { return w.Status }),
			export.TextColumn("方式", func(w models.WithdrawalRecord) interface{} { return w.Method }),
			export.TextColumn("收款账户", func(w models.WithdrawalRecord) interface{} { return w.Account }),
			export.TextColumn("创建时间", func(w models.WithdrawalRecord) interface{} { return w.CreatedAt }),
		},
	}
}

// DrawRecordDescriptor 抽奖记录
func DrawRecordDescriptor() *resource.Descriptor[models.DrawRecord] {
	return &resource.Descriptor[models.DrawRecord]{
		Collection:   CollectionDrawRecords,
		Title:        "抽奖记录",
		ReadOnly:     true,
		SortKey:      "created_at",
		SortDesc:     true,
		SearchFields: func(d models.DrawRecord) []string { return []string{d.Username, d.Prize} },
		FilterFields: []string{"activity_id"},
		Columns: []export.Column[models.DrawRecord]{
			export.NumberColumn("ID", func(d models.DrawRecord) interface{} { return d.ID }),
			export.TextColumn("用户名", func(d models.DrawRecord) interface{} { return d.Username }),
			export.NumberColumn("活动ID", func(d models.DrawRecord) interface{} { return d.ActivityID }),
			export.TextColumn("奖品", func(d models.DrawRecord) interface{} { return d.Prize }),
			export.TextColumn("创建时间", func(d models.DrawRecord) interface{} { return d.CreatedAt }),
		},
	}
}

func openLabel(open bool) string {
	if open {
		return "开放"
	}
	return "关闭"
}

func activeLabel(active bool) string {
	if active {
		return "启用"
	}
	return "停用"
}
