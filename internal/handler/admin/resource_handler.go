// Package admin 提供后台管理相关的 HTTP Handler
package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/taskmall-admin/internal/common/handler"
	oplog "github.com/dumeirei/taskmall-admin/internal/common/middleware"
	"github.com/dumeirei/taskmall-admin/internal/common/response"
	"github.com/dumeirei/taskmall-admin/internal/middleware"
	"github.com/dumeirei/taskmall-admin/internal/resource"
)

// HeaderQueryKey 客户端指定的查询键，同键的新查询会取代旧查询
const HeaderQueryKey = "X-Query-Key"

// 列表查询中不作为过滤条件的参数
var reservedParams = []string{"search", "page", "page_size", "token"}

// ResourceHandler 通用集合处理器
type ResourceHandler struct {
	registry *resource.Registry
}

// NewResourceHandler 创建通用集合处理器
func NewResourceHandler(registry *resource.Registry) *ResourceHandler {
	return &ResourceHandler{registry: registry}
}

// Register 为每个集合注册路由，只读集合不注册写接口
func (h *ResourceHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/collections", h.Collections)

	for _, name := range h.registry.Collections() {
		res, err := h.registry.Lookup(name)
		if err != nil {
			continue
		}

		g := rg.Group("/" + name)
		g.GET("", h.List(res))
		g.GET("/schema", h.Schema(res))
		g.GET("/export", h.Export(res))
		g.GET("/:id", h.Get(res))
		if res.Schema().ReadOnly {
			continue
		}
		g.POST("", h.Create(res))
		g.PUT("/:id", h.Update(res))
		g.DELETE("/:id", h.Delete(res))
	}
}

// Collections 获取集合列表
// @Summary 获取集合列表
// @Tags 数据管理
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=[]resource.Schema}
// @Router /api/admin/collections [get]
func (h *ResourceHandler) Collections(c *gin.Context) {
	names := h.registry.Collections()
	schemas := make([]resource.Schema, 0, len(names))
	for _, name := range names {
		if res, err := h.registry.Lookup(name); err == nil {
			schemas = append(schemas, res.Schema())
		}
	}
	response.Success(c, schemas)
}

// listQuery 组装列表查询，查询键默认按集合与会话区分
func listQuery(c *gin.Context, collection string) resource.ListQuery {
	key := c.GetHeader(HeaderQueryKey)
	if key == "" {
		if sess := middleware.GetSession(c); sess != nil {
			key = collection + ":" + sess.ID
		}
	}
	return resource.ListQuery{
		Search:   c.Query("search"),
		Filters:  handler.QueryFilters(c, reservedParams...),
		QueryKey: key,
	}
}

// List 查询集合
// @Summary 查询集合
// @Description 按过滤条件查询，search 对可搜索字段做不区分大小写的包含匹配
// @Tags 数据管理
// @Produce json
// @Security Bearer
// @Param collection path string true "集合名"
// @Param search query string false "搜索词"
// @Param X-Query-Key header string false "查询键"
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/admin/{collection} [get]
func (h *ResourceHandler) List(res resource.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := listQuery(c, res.Collection())
		list, total, err := res.List(c.Request.Context(), q)
		handler.MustSucceedList(c, err, list, total)
	}
}

// Schema 获取表单结构
// @Summary 获取表单结构
// @Tags 数据管理
// @Produce json
// @Security Bearer
// @Param collection path string true "集合名"
// @Success 200 {object} response.Response{data=resource.Schema}
// @Router /api/admin/{collection}/schema [get]
func (h *ResourceHandler) Schema(res resource.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Success(c, res.Schema())
	}
}

// Get 获取单条记录
// @Summary 获取单条记录
// @Tags 数据管理
// @Produce json
// @Security Bearer
// @Param collection path string true "集合名"
// @Param id path int true "记录ID"
// @Success 200 {object} response.Response
// @Router /api/admin/{collection}/{id} [get]
func (h *ResourceHandler) Get(res resource.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := handler.ParseID(c, "记录")
		if !ok {
			return
		}
		item, err := res.Get(c.Request.Context(), id)
		handler.MustSucceed(c, err, item)
	}
}

// Create 创建记录
// @Summary 创建记录
// @Description 数值字段无法解析时使用字段声明的替代值
// @Tags 数据管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param collection path string true "集合名"
// @Param request body map[string]interface{} true "表单字段"
// @Success 200 {object} response.Response
// @Router /api/admin/{collection} [post]
func (h *ResourceHandler) Create(res resource.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bindRaw(c)
		if !ok {
			return
		}
		item, err := res.Create(c.Request.Context(), raw)
		if err == nil {
			if e, ok := item.(interface{ GetID() int64 }); ok {
				c.Set(oplog.ContextKeyTargetID, e.GetID())
			}
		}
		handler.MustSucceed(c, err, item)
	}
}

// Update 更新记录
// @Summary 更新记录
// @Description 仅覆盖请求中出现的字段
// @Tags 数据管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param collection path string true "集合名"
// @Param id path int true "记录ID"
// @Param request body map[string]interface{} true "表单字段"
// @Success 200 {object} response.Response
// @Router /api/admin/{collection}/{id} [put]
func (h *ResourceHandler) Update(res resource.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := handler.ParseID(c, "记录")
		if !ok {
			return
		}
		raw, ok := bindRaw(c)
		if !ok {
			return
		}
		item, err := res.Update(c.Request.Context(), id, raw)
		handler.MustSucceed(c, err, item)
	}
}

// Delete 删除记录
// @Summary 删除记录
// @Tags 数据管理
// @Produce json
// @Security Bearer
// @Param collection path string true "集合名"
// @Param id path int true "记录ID"
// @Success 200 {object} response.Response
// @Router /api/admin/{collection}/{id} [delete]
func (h *ResourceHandler) Delete(res resource.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := handler.ParseID(c, "记录")
		if !ok {
			return
		}
		err := res.Delete(c.Request.Context(), id)
		handler.MustSucceed(c, err, nil)
	}
}

// Export 导出 CSV
// @Summary 导出 CSV
// @Description 导出当前过滤与搜索结果，文件名包含当天日期
// @Tags 数据管理
// @Produce text/csv
// @Security Bearer
// @Param collection path string true "集合名"
// @Param search query string false "搜索词"
// @Success 200 {file} file
// @Router /api/admin/{collection}/export [get]
func (h *ResourceHandler) Export(res resource.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := listQuery(c, res.Collection())
		// 导出不参与取代，避免与列表刷新互相取消
		q.QueryKey = ""

		body, filename, err := res.Export(c.Request.Context(), q)
		if handler.HandleError(c, err) {
			return
		}
		response.Attachment(c, filename, "text/csv; charset=utf-8", body)
	}
}

func bindRaw(c *gin.Context) (map[string]interface{}, bool) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.BadRequest(c, "参数错误")
		return nil, false
	}
	return raw, true
}
