package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 任务订单状态
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// TaskOrder 用户端任务订单，仅展示静态数据
type TaskOrder struct {
	OrderNo    string          `json:"order_no"`
	Hotel      string          `json:"hotel"`
	Room       string          `json:"room"`
	Progress   int             `json:"progress"`
	Total      int             `json:"total"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Commission decimal.Decimal `json:"commission"`
	Rating     float64         `json:"rating"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// DepositChannel 用户端充值通道，固定列表
type DepositChannel struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	MinAmount     decimal.Decimal `json:"min_amount"`
	MaxAmount     decimal.Decimal `json:"max_amount"`
	WalletAddress string          `json:"wallet_address"`
	Network       string          `json:"network"`
}

// Accepts 金额是否在通道限额内
func (d DepositChannel) Accepts(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(d.MinAmount) && amount.LessThanOrEqual(d.MaxAmount)
}
