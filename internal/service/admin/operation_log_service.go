package admin

import (
	"context"
	"time"

	"github.com/dumeirei/taskmall-admin/internal/models"
	"github.com/dumeirei/taskmall-admin/internal/repository"
)

// OperationLogService 操作日志查询服务
type OperationLogService struct {
	repo *repository.OperationLogRepository
}

// NewOperationLogService 创建操作日志服务
func NewOperationLogService(repo *repository.OperationLogRepository) *OperationLogService {
	return &OperationLogService{repo: repo}
}

// OperationLogQuery 查询条件
type OperationLogQuery struct {
	Actor      string `form:"actor"`
	Collection string `form:"collection"`
	Action     string `form:"action"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

// List 分页查询操作日志，日期格式为 2006-01-02
func (s *OperationLogService) List(ctx context.Context, q *OperationLogQuery, offset, limit int) ([]*models.OperationLog, int64, error) {
	filter := &repository.OperationLogFilter{
		Actor:      q.Actor,
		Collection: q.Collection,
		Action:     q.Action,
	}
	if q.StartDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", q.StartDate, time.Local); err == nil {
			filter.StartTime = &t
		}
	}
	if q.EndDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", q.EndDate, time.Local); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			filter.EndTime = &end
		}
	}
	return s.repo.List(ctx, filter, offset, limit)
}

// Purge 删除保留期之前的日志
func (s *OperationLogService) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.DeleteBefore(ctx, time.Now().Add(-retention))
}
