package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dumeirei/taskmall-admin/internal/models"
)

// OperationLogRepository 操作日志仓储
type OperationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository 创建操作日志仓储
func NewOperationLogRepository(db *gorm.DB) *OperationLogRepository {
	return &OperationLogRepository{db: db}
}

// OperationLogFilter 操作日志筛选条件
type OperationLogFilter struct {
	Actor      string
	Collection string
	Action     string
	StartTime  *time.Time
	EndTime    *time.Time
}

// Create 创建操作日志
func (r *OperationLogRepository) Create(ctx context.Context, log *models.OperationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// List 获取操作日志列表
func (r *OperationLogRepository) List(ctx context.Context, filter *OperationLogFilter, offset, limit int) ([]*models.OperationLog, int64, error) {
	var logs []*models.OperationLog
	var total int64

	query := r.db.WithContext(ctx).Model(&models.OperationLog{})

	if filter != nil {
		if filter.Actor != "" {
			query = query.Where("actor = ?", filter.Actor)
		}
		if filter.Collection != "" {
			query = query.Where("collection = ?", filter.Collection)
		}
		if filter.Action != "" {
			query = query.Where("action = ?", filter.Action)
		}
		if filter.StartTime != nil {
			query = query.Where("created_at >= ?", *filter.StartTime)
		}
		if filter.EndTime != nil {
			query = query.Where("created_at <= ?", *filter.EndTime)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// GetCollectionStats 获取各集合操作次数
func (r *OperationLogRepository) GetCollectionStats(ctx context.Context, since time.Time) (map[string]int64, error) {
	var results []struct {
		Collection string
		Count      int64
	}

	err := r.db.WithContext(ctx).Model(&models.OperationLog{}).
		Select("collection, count(*) as count").
		Where("created_at >= ?", since).
		Group("collection").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int64)
	for _, r := range results {
		stats[r.Collection] = r.Count
	}
	return stats, nil
}

// DeleteBefore 删除指定时间之前的日志
func (r *OperationLogRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", before).
		Delete(&models.OperationLog{})
	return result.RowsAffected, result.Error
}
