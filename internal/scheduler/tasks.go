package scheduler

import (
	"context"
	"time"

	"github.com/dumeirei/taskmall-admin/internal/common/config"
	"github.com/dumeirei/taskmall-admin/internal/common/logger"
	"github.com/dumeirei/taskmall-admin/internal/common/metrics"
	"github.com/dumeirei/taskmall-admin/internal/common/session"
	"github.com/dumeirei/taskmall-admin/internal/resource"
	adminService "github.com/dumeirei/taskmall-admin/internal/service/admin"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	resources  *resource.Registry
	sessions   *session.Store
	operations *adminService.OperationLogService
	metrics    *metrics.Metrics
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(
	resources *resource.Registry,
	sessions *session.Store,
	operations *adminService.OperationLogService,
	m *metrics.Metrics,
) *TaskHandler {
	return &TaskHandler{
		resources:  resources,
		sessions:   sessions,
		operations: operations,
		metrics:    m,
	}
}

// RefreshCollectionRows 刷新各集合行数指标，单个集合失败不影响其余集合
func (h *TaskHandler) RefreshCollectionRows(ctx context.Context) error {
	var firstErr error
	for _, name := range h.resources.Collections() {
		res, err := h.resources.Lookup(name)
		if err != nil {
			continue
		}
		rows, err := res.Count(ctx)
		if err != nil {
			logger.Warn("count collection failed", logger.Collection(name), logger.Err(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		h.metrics.SetCollectionRows(name, rows)
	}
	return firstErr
}

// SweepSessions 清理过期会话并更新活跃会话指标
func (h *TaskHandler) SweepSessions(ctx context.Context) error {
	active, removed, err := h.sessions.Sweep(ctx)
	if err != nil {
		return err
	}
	for kind, n := range active {
		h.metrics.SetActiveSessions(kind, n)
	}
	if removed > 0 {
		logger.Info("expired sessions removed", logger.Int("removed", removed))
	}
	return nil
}

// PurgeOperationLogs 返回按保留天数清理操作日志的任务
func (h *TaskHandler) PurgeOperationLogs(days int) func(ctx context.Context) error {
	retention := time.Duration(days) * 24 * time.Hour
	return func(ctx context.Context) error {
		n, err := h.operations.Purge(ctx, retention)
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Info("operation logs purged", logger.Int64("rows", n), logger.Int("retention_days", days))
		}
		return nil
	}
}

// Register 按配置登记任务
func (h *TaskHandler) Register(s *Scheduler, cfg *config.SchedulerConfig) error {
	if err := s.AddTask("collection_rows", cfg.CollectionStats, h.RefreshCollectionRows); err != nil {
		return err
	}
	if err := s.AddTask("session_sweep", cfg.SessionSweepSpec, h.SweepSessions); err != nil {
		return err
	}
	if cfg.OperationLogDays > 0 {
		if err := s.AddTask("operation_log_purge", cfg.OperationLogPurge, h.PurgeOperationLogs(cfg.OperationLogDays)); err != nil {
			return err
		}
	}
	return nil
}
