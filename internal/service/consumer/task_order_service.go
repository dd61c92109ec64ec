package consumer

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dumeirei/taskmall-admin/internal/models"
	"github.com/dumeirei/taskmall-admin/internal/resource"
)

// TaskOrderService 任务订单服务，数据为固定演示数据
type TaskOrderService struct {
	orders []models.TaskOrder
}

// NewTaskOrderService 创建任务订单服务，base 为演示数据的时间基准
func NewTaskOrderService(base time.Time) *TaskOrderService {
	return &TaskOrderService{orders: mockTaskOrders(base)}
}

// TaskOrderQuery 任务订单查询
type TaskOrderQuery struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

// TaskOrderSummary 各状态数量
type TaskOrderSummary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// List 按状态过滤后搜索订单号、酒店和房型，按时间倒序
func (s *TaskOrderService) List(q TaskOrderQuery) []models.TaskOrder {
	out := make([]models.TaskOrder, 0, len(s.orders))
	for _, o := range s.orders {
		if q.Status != "" && q.Status != "all" && o.Status != q.Status {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return resource.Search(out, q.Search, func(o models.TaskOrder) []string {
		return []string{o.OrderNo, o.Hotel, o.Room}
	})
}

// Summary 统计各状态订单数
func (s *TaskOrderService) Summary() TaskOrderSummary {
	sum := TaskOrderSummary{Total: len(s.orders)}
	for _, o := range s.orders {
		switch o.Status {
		case models.TaskStatusPending:
			sum.Pending++
		case models.TaskStatusInProgress:
			sum.InProgress++
		case models.TaskStatusCompleted:
			sum.Completed++
		}
	}
	return sum
}

func mockTaskOrders(base time.Time) []models.TaskOrder {
	d := decimal.RequireFromString
	return []models.TaskOrder{
		{
			OrderNo: "T202405010001", Hotel: "Grand Hyatt Saigon", Room: "Deluxe King",
			Progress: 3, Total: 3, Quantity: 1, Price: d("128.00"), Commission: d("3.84"),
			Rating: 4.8, Status: models.TaskStatusCompleted, CreatedAt: base.Add(-72 * time.Hour),
		},
		{
			OrderNo: "T202405010002", Hotel: "Hilton Hanoi Opera", Room: "Twin Superior",
			Progress: 1, Total: 3, Quantity: 2, Price: d("96.50"), Commission: d("2.90"),
			Rating: 4.5, Status: models.TaskStatusInProgress, CreatedAt: base.Add(-26 * time.Hour),
		},
		{
			OrderNo: "T202405010003", Hotel: "Sheraton Nha Trang", Room: "Ocean View Suite",
			Progress: 0, Total: 2, Quantity: 1, Price: d("210.00"), Commission: d("6.30"),
			Rating: 4.9, Status: models.TaskStatusPending, CreatedAt: base.Add(-3 * time.Hour),
		},
		{
			OrderNo: "T202405010004", Hotel: "InterContinental Danang", Room: "Classic King",
			Progress: 2, Total: 2, Quantity: 1, Price: d("175.20"), Commission: d("5.26"),
			Rating: 4.7, Status: models.TaskStatusCompleted, CreatedAt: base.Add(-48 * time.Hour),
		},
		{
			OrderNo: "T202405010005", Hotel: "Novotel Phu Quoc", Room: "Superior Twin",
			Progress: 0, Total: 1, Quantity: 3, Price: d("64.00"), Commission: d("1.92"),
			Rating: 4.2, Status: models.TaskStatusPending, CreatedAt: base.Add(-90 * time.Minute),
		},
	}
}
