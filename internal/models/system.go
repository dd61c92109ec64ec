package models

import (
	"time"

	"gorm.io/datatypes"
)

// 系统设置值类型
const (
	SettingTypeString  = "string"
	SettingTypeNumber  = "number"
	SettingTypeBoolean = "boolean"
	SettingTypeJSON    = "json"
)

// SystemSetting 系统设置
type SystemSetting struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SettingKey   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"setting_key"`
	SettingValue string    `gorm:"type:text" json:"setting_value"`
	ValueType    string    `gorm:"type:varchar(20);not null" json:"value_type"`
	Category     string    `gorm:"type:varchar(50);not null;index" json:"category"`
	DisplayName  string    `gorm:"type:varchar(100)" json:"display_name"`
	Description  string    `gorm:"type:varchar(500)" json:"description"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (SystemSetting) TableName() string {
	return "system_settings"
}

// GetID 主键
func (s SystemSetting) GetID() int64 {
	return s.ID
}

// DictionaryItem 字典项
type DictionaryItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Category  string    `gorm:"type:varchar(50);not null;index" json:"category"`
	ItemKey   string    `gorm:"type:varchar(100);not null" json:"item_key"`
	ItemValue string    `gorm:"type:varchar(500)" json:"item_value"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 表名
func (DictionaryItem) TableName() string {
	return "dictionary_items"
}

// GetID 主键
func (d DictionaryItem) GetID() int64 {
	return d.ID
}

// OperationLog 后台操作日志
type OperationLog struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor       string         `gorm:"type:varchar(100);not null;index" json:"actor"`
	SessionID   string         `gorm:"type:varchar(64)" json:"session_id"`
	Collection  string         `gorm:"type:varchar(50);not null;index" json:"collection"`
	Action      string         `gorm:"type:varchar(20);not null" json:"action"`
	TargetID    *int64         `json:"target_id,omitempty"`
	RequestBody datatypes.JSON `json:"request_body,omitempty"`
	StatusCode  int            `gorm:"not null" json:"status_code"`
	IP          string         `gorm:"type:varchar(45);not null" json:"ip"`
	UserAgent   string         `gorm:"type:varchar(255)" json:"user_agent"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 表名
func (OperationLog) TableName() string {
	return "operation_logs"
}

// GetID 主键
func (o OperationLog) GetID() int64 {
	return o.ID
}
