// Package models 定义数据库实体
package models

// Entity 可由通用资源服务管理的实体
type Entity interface {
	GetID() int64
	TableName() string
}

// 通用记录状态
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRejected  = "rejected"
)

// All 返回需要自动迁移的全部实体
func All() []interface{} {
	return []interface{}{
		&Category{},
		&CustomerServiceChannel{},
		&EventActivity{},
		&UserLevel{},
		&LuckyWheelActivity{},
		&PaymentMerchant{},
		&PayoutChannel{},
		&PaymentRecord{},
		&RechargeRecord{},
		&WithdrawalRecord{},
		&DrawRecord{},
		&SystemSetting{},
		&DictionaryItem{},
		&OperationLog{},
	}
}
