package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMerchant 代收商户
type PaymentMerchant struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	MerchantName string          `gorm:"type:varchar(100);not null" json:"merchant_name"`
	MerchantNo   string          `gorm:"type:varchar(100);not null;index" json:"merchant_no"`
	AccountNo    string          `gorm:"type:varchar(100)" json:"account_no"`
	APIURL       string          `gorm:"type:varchar(500)" json:"api_url"`
	BackendURL   string          `gorm:"type:varchar(500)" json:"backend_url"`
	Rate         decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0" json:"rate"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(15,6);not null;default:0" json:"exchange_rate"`
	MinAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"min_amount"`
	MaxAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"max_amount"`
	SortWeight   int             `gorm:"not null;default:0" json:"sort_weight"`
	IsActive     bool            `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 表名
func (PaymentMerchant) TableName() string {
	return "payment_merchants"
}

// GetID 主键
func (p PaymentMerchant) GetID() int64 {
	return p.ID
}

// PayoutChannel 代付通道
type PayoutChannel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ChannelName  string          `gorm:"type:varchar(100);not null" json:"channel_name"`
	ChannelCode  string          `gorm:"type:varchar(50);not null;index" json:"channel_code"`
	MerchantNo   string          `gorm:"type:varchar(100)" json:"merchant_no"`
	AccountNo    string          `gorm:"type:varchar(100)" json:"account_no"`
	APIURL       string          `gorm:"type:varchar(500)" json:"api_url"`
	BackendURL   string          `gorm:"type:varchar(500)" json:"backend_url"`
	Rate         decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0" json:"rate"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(15,6);not null;default:0" json:"exchange_rate"`
	MinAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"min_amount"`
	MaxAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"max_amount"`
	SortWeight   int             `gorm:"not null;default:0" json:"sort_weight"`
	IsActive     bool            `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 表名
func (PayoutChannel) TableName() string {
	return "payout_channels"
}

// GetID 主键
func (p PayoutChannel) GetID() int64 {
	return p.ID
}

// PaymentRecord 支付流水，只追加
type PaymentRecord struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string          `gorm:"type:varchar(100);not null;index" json:"username"`
	OrderNo   string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_no"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status    string          `gorm:"type:varchar(20);not null;index" json:"status"`
	Method    string          `gorm:"type:varchar(50)" json:"method"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (PaymentRecord) TableName() string {
	return "payment_records"
}

// GetID 主键
func (p PaymentRecord) GetID() int64 {
	return p.ID
}

// RechargeRecord 充值记录，只追加
type RechargeRecord struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string          `gorm:"type:varchar(100);not null;index" json:"username"`
	OrderNo   string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_no"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status    string          `gorm:"type:varchar(20);not null;index" json:"status"`
	Method    string          `gorm:"type:varchar(50)" json:"method"`
	Network   string          `gorm:"type:varchar(50)" json:"network"`
	TxHash    string          `gorm:"type:varchar(128)" json:"tx_hash"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (RechargeRecord) TableName() string {
	return "recharge_records"
}

// GetID 主键
func (r RechargeRecord) GetID() int64 {
	return r.ID
}

// WithdrawalRecord 提现记录，只追加
type WithdrawalRecord struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string          `gorm:"type:varchar(100);not null;index" json:"username"`
	OrderNo   string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_no"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status    string          `gorm:"type:varchar(20);not null;index" json:"status"`
	Method    string          `gorm:"type:varchar(50)" json:"method"`
	Account   string          `gorm:"type:varchar(255)" json:"account"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (WithdrawalRecord) TableName() string {
	return "withdrawal_records"
}

// GetID 主键
func (w WithdrawalRecord) GetID() int64 {
	return w.ID
}

// DrawRecord 转盘抽奖记录，只追加
type DrawRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username   string    `gorm:"type:varchar(100);not null;index" json:"username"`
	ActivityID int64     `gorm:"not null;index" json:"activity_id"`
	Prize      string    `gorm:"type:varchar(255)" json:"prize"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 表名
func (DrawRecord) TableName() string {
	return "draw_records"
}

// GetID 主键
func (d DrawRecord) GetID() int64 {
	return d.ID
}
