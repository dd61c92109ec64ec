// Package order 提供任务订单相关的 HTTP Handler
package order

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/taskmall-admin/internal/common/handler"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	consumerService "github.com/dumeirei/taskmall-admin/internal/service/consumer"
)

// TaskOrderHandler 任务订单处理器
type TaskOrderHandler struct {
	orderService *consumerService.TaskOrderService
}

// NewTaskOrderHandler 创建任务订单处理器
func NewTaskOrderHandler(orderSvc *consumerService.TaskOrderService) *TaskOrderHandler {
	return &TaskOrderHandler{orderService: orderSvc}
}

// List 获取任务订单
// @Summary 获取任务订单
// @Tags 任务订单
// @Produce json
// @Security Bearer
// @Param status query string false "状态" Enums(all, pending, in_progress, completed)
// @Param search query string false "搜索订单号、酒店、房型"
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/task-orders [get]
func (h *TaskOrderHandler) List(c *gin.Context) {
	if _, ok := handler.RequireSession(c); !ok {
		return
	}

	var q consumerService.TaskOrderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	list := h.orderService.List(q)
	response.SuccessList(c, list, int64(len(list)))
}

// Summary 获取任务订单统计
// @Summary 获取任务订单统计
// @Tags 任务订单
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=consumerService.TaskOrderSummary}
// @Router /api/v1/task-orders/summary [get]
func (h *TaskOrderHandler) Summary(c *gin.Context) {
	if _, ok := handler.RequireSession(c); !ok {
		return
	}
	response.Success(c, h.orderService.Summary())
}
