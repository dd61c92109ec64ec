package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category 商品分类
type Category struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName         string    `gorm:"type:varchar(100);not null" json:"category_name"`
	ClassificationNumber int       `gorm:"not null;default:0;index" json:"classification_number"`
	OpenState            bool      `gorm:"not null" json:"open_state"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 表名
func (Category) TableName() string {
	return "categories"
}

// GetID 主键
func (c Category) GetID() int64 {
	return c.ID
}

// 客服渠道类型
const (
	ServiceTypePhone    = "phone"
	ServiceTypeTelegram = "telegram"
	ServiceTypeChat     = "chat"
	ServiceTypeEmail    = "email"
	ServiceTypeWhatsApp = "whatsapp"
)

// CustomerServiceChannel 客服渠道
type CustomerServiceChannel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Type         string    `gorm:"type:varchar(20);not null;index" json:"type"`
	Contact      string    `gorm:"type:varchar(255)" json:"contact"`
	Link         string    `gorm:"type:varchar(500)" json:"link"`
	WorkingHours string    `gorm:"type:varchar(100)" json:"working_hours"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 表名
func (CustomerServiceChannel) TableName() string {
	return "customer_service_channels"
}

// GetID 主键
func (c CustomerServiceChannel) GetID() int64 {
	return c.ID
}

// EventActivity 活动公告
type EventActivity struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SerialNumber string    `gorm:"type:varchar(50)" json:"serial_number"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Content      string    `gorm:"type:text" json:"content"`
	ImageURL     string    `gorm:"type:varchar(500)" json:"image_url"`
	LinkURL      string    `gorm:"type:varchar(500)" json:"link_url"`
	SortWeight   int       `gorm:"not null" json:"sort_weight"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 表名
func (EventActivity) TableName() string {
	return "event_activities"
}

// GetID 主键
func (e EventActivity) GetID() int64 {
	return e.ID
}

// UserLevel 用户等级
type UserLevel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SerialNumber    string          `gorm:"type:varchar(50)" json:"serial_number"`
	IconURL         string          `gorm:"type:varchar(500)" json:"icon_url"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	Level           int             `gorm:"not null;default:0" json:"level"`
	WithdrawalLimit string          `gorm:"type:varchar(255)" json:"withdrawal_limit"`
	OrderGrabLimit  string          `gorm:"type:varchar(255)" json:"order_grab_limit"`
	UpgradePrice    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"upgrade_price"`
	SortWeight      int             `gorm:"not null;default:0" json:"sort_weight"`
	IsDisplayed     bool            `gorm:"not null" json:"is_displayed"`
	IsOpen          bool            `gorm:"not null" json:"is_open"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 表名
func (UserLevel) TableName() string {
	return "user_levels"
}

// GetID 主键
func (u UserLevel) GetID() int64 {
	return u.ID
}

// LuckyWheelActivity 幸运转盘活动
type LuckyWheelActivity struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Details       string    `gorm:"type:text" json:"details"`
	DailyLimit    int       `gorm:"not null" json:"daily_limit"`
	TotalLimit    *int      `json:"total_limit"`
	FreeDrawDaily bool      `gorm:"not null" json:"free_draw_daily"`
	IsActive      bool      `gorm:"not null" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 表名
func (LuckyWheelActivity) TableName() string {
	return "lucky_wheel_activities"
}

// GetID 主键
func (l LuckyWheelActivity) GetID() int64 {
	return l.ID
}
