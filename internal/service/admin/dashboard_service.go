package admin

import (
	"context"
	"time"

	"github.com/dumeirei/taskmall-admin/internal/models"
	"github.com/dumeirei/taskmall-admin/internal/repository"
	"github.com/dumeirei/taskmall-admin/internal/resource"
)

// DashboardService 仪表盘服务
type DashboardService struct {
	resources *resource.Registry
	oplogRepo *repository.OperationLogRepository
	now       func() time.Time
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(resources *resource.Registry, oplogRepo *repository.OperationLogRepository) *DashboardService {
	return &DashboardService{
		resources: resources,
		oplogRepo: oplogRepo,
		now:       time.Now,
	}
}

// CollectionStat 集合统计
type CollectionStat struct {
	Collection      string `json:"collection"`
	Title           string `json:"title"`
	ReadOnly        bool   `json:"read_only"`
	Rows            int64  `json:"rows"`
	TodayOperations int64  `json:"today_operations"`
}

// Overview 仪表盘概览
type Overview struct {
	Collections      []CollectionStat       `json:"collections"`
	RecentOperations []*models.OperationLog `json:"recent_operations"`
	GeneratedAt      time.Time              `json:"generated_at"`
}

// GetOverview 获取各集合行数、今日操作数和最近操作
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	ops, err := s.oplogRepo.GetCollectionStats(ctx, today)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		Collections: make([]CollectionStat, 0),
		GeneratedAt: now,
	}
	for _, name := range s.resources.Collections() {
		res, err := s.resources.Lookup(name)
		if err != nil {
			return nil, err
		}
		rows, err := res.Count(ctx)
		if err != nil {
			return nil, err
		}
		schema := res.Schema()
		overview.Collections = append(overview.Collections, CollectionStat{
			Collection:      name,
			Title:           schema.Title,
			ReadOnly:        schema.ReadOnly,
			Rows:            rows,
			TodayOperations: ops[name],
		})
	}

	recent, _, err := s.oplogRepo.List(ctx, nil, 0, 10)
	if err != nil {
		return nil, err
	}
	overview.RecentOperations = recent
	return overview, nil
}
