// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/taskmall-admin/internal/models"
)

// Store 单表通用仓储
type Store[T models.Entity] struct {
	db *gorm.DB
}

// NewStore 创建通用仓储
func NewStore[T models.Entity](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// DB 底层连接
func (r *Store[T]) DB() *gorm.DB {
	return r.db
}

// FindAll 按等值条件和排序查询全部记录
func (r *Store[T]) FindAll(ctx context.Context, eq map[string]interface{}, order string) ([]T, error) {
	var items []T

	query := r.db.WithContext(ctx).Model(new(T))
	if len(eq) > 0 {
		query = query.Where(eq)
	}
	if order != "" {
		query = query.Order(order)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取记录
func (r *Store[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create 创建记录
func (r *Store[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Save 保存记录全部字段
func (r *Store[T]) Save(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete 删除记录，记录不存在时返回 gorm.ErrRecordNotFound
func (r *Store[T]) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count 统计记录数
func (r *Store[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}
