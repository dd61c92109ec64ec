package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/taskmall-admin/internal/common/handler"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	adminService "github.com/dumeirei/taskmall-admin/internal/service/admin"
)

// DashboardHandler 仪表盘与操作日志处理器
type DashboardHandler struct {
	dashboardService    *adminService.DashboardService
	operationLogService *adminService.OperationLogService
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(dashboardSvc *adminService.DashboardService, operationLogSvc *adminService.OperationLogService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:    dashboardSvc,
		operationLogService: operationLogSvc,
	}
}

// Overview 获取仪表盘概览
// @Summary 获取仪表盘概览
// @Tags 管理员-仪表盘
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=adminService.Overview}
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	result, err := h.dashboardService.GetOverview(c.Request.Context())
	handler.MustSucceed(c, err, result)
}

// ListOperationLogs 获取操作日志
// @Summary 获取操作日志
// @Tags 管理员-仪表盘
// @Produce json
// @Security Bearer
// @Param actor query string false "操作人"
// @Param collection query string false "集合名"
// @Param action query string false "操作"
// @Param start_date query string false "开始日期 2006-01-02"
// @Param end_date query string false "结束日期 2006-01-02"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/admin/operation-logs [get]
func (h *DashboardHandler) ListOperationLogs(c *gin.Context) {
	var q adminService.OperationLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}
	offset, limit := handler.BindPagination(c)

	list, total, err := h.operationLogService.List(c.Request.Context(), &q, offset, limit)
	handler.MustSucceedList(c, err, list, total)
}
