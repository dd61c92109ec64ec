// Package resource 提供声明式实体描述驱动的通用列表与表单服务
package resource

import (
	"github.com/dumeirei/taskmall-admin/internal/export"
	"github.com/dumeirei/taskmall-admin/internal/form"
	"github.com/dumeirei/taskmall-admin/internal/models"
)

// Descriptor 实体描述
type Descriptor[T models.Entity] struct {
	// Collection 集合名，同时作为缓存分组键和路由段
	Collection string
	// Title 提示文案中的实体名称
	Title string
	Form  *form.Descriptor
	// SortKey 列表排序列，为空时按 id
	SortKey  string
	SortDesc bool
	// SearchFields 返回参与搜索的字段值
	SearchFields func(T) []string
	// FilterFields 允许精确过滤的列
	FilterFields []string
	// ReadOnly 只读集合不提供创建、修改、删除
	ReadOnly bool
	Columns  []export.Column[T]
}

// order 生成排序子句，id 作为次序键保证结果稳定
func (d *Descriptor[T]) order() string {
	dir := "ASC"
	if d.SortDesc {
		dir = "DESC"
	}
	if d.SortKey == "" || d.SortKey == "id" {
		return "id " + dir
	}
	return d.SortKey + " " + dir + ", id " + dir
}

func (d *Descriptor[T]) filterable(name string) bool {
	for _, f := range d.FilterFields {
		if f == name {
			return true
		}
	}
	return false
}

// Schema 表单结构，供客户端渲染对话框
type Schema struct {
	Collection string                 `json:"collection"`
	Title      string                 `json:"title"`
	ReadOnly   bool                   `json:"read_only"`
	Fields     []form.Field           `json:"fields"`
	Defaults   map[string]interface{} `json:"defaults"`
	Filters    []string               `json:"filters"`
	Columns    []string               `json:"columns"`
}

// Schema 返回实体的表单结构
func (d *Descriptor[T]) Schema() Schema {
	s := Schema{
		Collection: d.Collection,
		Title:      d.Title,
		ReadOnly:   d.ReadOnly,
		Fields:     []form.Field{},
		Defaults:   map[string]interface{}{},
		Filters:    append([]string{}, d.FilterFields...),
	}
	if d.Form != nil {
		s.Fields = d.Form.Fields
		s.Defaults = d.Form.Defaults()
	}
	for _, c := range d.Columns {
		s.Columns = append(s.Columns, c.Header)
	}
	return s
}
